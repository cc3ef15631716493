package handler

type createCustomerRequest struct {
	FullName string `json:"full_name" validate:"required,min=3,max=120"`
	Document string `json:"document"  validate:"required,len=11,numeric"`
	UserID   string `json:"user_id"   validate:"required"`
}
