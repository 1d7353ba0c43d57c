package dto

// SeedRequest controls the development-only sample data endpoint.
type SeedRequest struct {
	Vendors  int `query:"vendors"`
	Invoices int `query:"invoices"`
}

// SeedResponse reports what the generator inserted.
type SeedResponse struct {
	Message         string `json:"message"`
	VendorsCreated  int    `json:"vendors_created"`
	InvoicesCreated int    `json:"invoices_created"`
}
