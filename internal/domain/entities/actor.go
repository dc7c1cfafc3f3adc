package entities

type Role string

const (
	RoleCustomer   Role = "customer"
	RoleTechnician Role = "technician"
	RoleSupplier   Role = "supplier"
	RoleAdmin      Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleTechnician, RoleSupplier, RoleAdmin:
		return true
	}
	return false
}

// Actor is the authenticated caller behind a command.
type Actor struct {
	ID   string `json:"id"`
	Role Role   `json:"role"`
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}
