package domain

type UserRole string

const (
	UserRoleCustomer UserRole = "CUSTOMER"
	UserRoleStaff    UserRole = "STAFF"
)

type User struct {
	ID           int32    `json:"id"`
	Email        string   `json:"email"`
	PasswordHash string   `json:"-"`
	Name         string   `json:"name"`
	Role         UserRole `json:"role"`
	CreatedOn    string   `json:"created_on"`
}
