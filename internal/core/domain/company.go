package domain

// CompanyRole is the access level a user holds inside a company (tenant).
type CompanyRole string

const (
	RoleAdmin    CompanyRole = "ADMIN"
	RoleMember   CompanyRole = "MEMBER"
	RoleReadOnly CompanyRole = "READONLY"
)

var roleRank = map[CompanyRole]int{
	RoleReadOnly: 1,
	RoleMember:   2,
	RoleAdmin:    3,
}

// Allows reports whether r grants at least the access of required.
func (r CompanyRole) Allows(required CompanyRole) bool {
	have, ok := roleRank[r]
	return ok && have >= roleRank[required]
}
