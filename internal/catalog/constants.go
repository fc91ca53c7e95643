package catalog

// Log messages
const (
	LogMsgNoItemsElement    = "Document has no Items element, skipping"
	LogMsgUnknownPriceAttrs = "Ignoring unknown price attributes"
	LogMsgUnnamedItem       = "Item has no display name"
)
