package example

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type User struct {
	Role Role
}

func good() {
	var u User
	u.Role = RoleAdmin
	_ = u
}

func bad() {
	var u User
	u.Role = "admin" // want `enum field Role assigned string literal; use defined constant instead`
	_ = u
}
