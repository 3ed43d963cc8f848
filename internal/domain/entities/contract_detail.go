package entities

const (
	SummaryTypeUnknown = "UNKNOWN"
	NotAvailable       = "N/A"
)

// ClientSummary is the display form of a client attached to a contract.
type ClientSummary struct {
	ID          int64  `json:"id"`
	Type        string `json:"type"`
	Name        string `json:"name"`
	Identifier  string `json:"identifier"`
	Email       string `json:"email,omitempty"`
	PhoneNumber *int64 `json:"phoneNumber,omitempty"`
}

type UserSummary struct {
	ID       int64  `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email,omitempty"`
	Username string `json:"username"`
}

type VehicleSummary struct {
	ID     int64   `json:"id"`
	Type   string  `json:"type"`
	Brand  string  `json:"brand"`
	Line   string  `json:"line,omitempty"`
	Model  string  `json:"model"`
	Plate  string  `json:"plate"`
	Status *string `json:"status,omitempty"`
}

// ContractDetail is a contract enriched with summaries of its references.
type ContractDetail struct {
	Contract
	ClientSummary  *ClientSummary  `json:"clientSummary,omitempty"`
	UserSummary    *UserSummary    `json:"userSummary,omitempty"`
	VehicleSummary *VehicleSummary `json:"vehicleSummary,omitempty"`
}
