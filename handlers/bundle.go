package handlers

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	Wizard   *WizardHandler
	Catalog  *CatalogHandler
	Receipts *ReceiptHandler
}
