package profile

// Profile is the per-user document keyed by email. A user that never
// saved one is represented by empty name and company.
type Profile struct {
	Email   string `db:"email"`
	Name    string `db:"user_name"`
	Company string `db:"user_company"`
}
