package entities

// ClientKind tags which client registry record a ResolvedClient carries.
type ClientKind string

const (
	ClientKindPerson  ClientKind = "PERSON"
	ClientKindCompany ClientKind = "COMPANY"
)

type Address struct {
	ID     int64  `json:"id"`
	Street string `json:"street"`
	Number string `json:"number"`
	City   string `json:"city"`
}

// Person is a natural-person client as returned by the client registry.
type Person struct {
	ID          int64    `json:"id"`
	NationalID  *int64   `json:"nationalId"`
	FirstName   string   `json:"firstName"`
	LastName    string   `json:"lastName"`
	Email       string   `json:"email"`
	PhoneNumber *int64   `json:"phoneNumber"`
	Address     *Address `json:"address,omitempty"`
	Enabled     bool     `json:"isEnabled"`
}

// Company is a legal-entity client as returned by the client registry.
type Company struct {
	ID          int64    `json:"id"`
	TaxID       string   `json:"taxId"`
	CompanyName string   `json:"companyName"`
	Email       string   `json:"email"`
	PhoneNumber *int64   `json:"phoneNumber"`
	Address     *Address `json:"address,omitempty"`
	Enabled     bool     `json:"isEnabled"`
}

// ResolvedClient is the outcome of resolving a client id: exactly one of
// Person or Company is set, as indicated by Kind.
type ResolvedClient struct {
	Kind    ClientKind
	Person  *Person
	Company *Company
}

func ResolvedPerson(p Person) ResolvedClient {
	return ResolvedClient{Kind: ClientKindPerson, Person: &p}
}

func ResolvedCompany(c Company) ResolvedClient {
	return ResolvedClient{Kind: ClientKindCompany, Company: &c}
}

func (r ResolvedClient) ID() int64 {
	switch r.Kind {
	case ClientKindPerson:
		if r.Person != nil {
			return r.Person.ID
		}
	case ClientKindCompany:
		if r.Company != nil {
			return r.Company.ID
		}
	}
	return 0
}
