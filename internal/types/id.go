// README: Common identifier type used across modules.
package types

// ID is an opaque record identifier. Trip and user IDs are store-generated
// 32-char hex strings; account IDs come from the identity provider.
type ID string
