package aiusage

// monthFormat keys the ledger by calendar month.
const monthFormat = "2006-01"
