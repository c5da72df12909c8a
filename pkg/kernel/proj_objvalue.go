package kernel

type Email string

func (e Email) String() string { return string(e) }
func (e Email) IsEmpty() bool  { return string(e) == "" }

type Phone string

type FirstName string

type LastName string

type CompanyName string

type JobTitle string

type JobDescription string

type JobSlug string

func (s JobSlug) String() string { return string(s) }

type BucketURL string

// UserType distinguishes the three account roles of the platform.
// Authorization predicates key on it, so it lives in kernel rather than in
// the account domain.
type UserType string

const (
	UserTypeCandidate UserType = "candidate"
	UserTypeEmployer  UserType = "employer"
	UserTypeAdmin     UserType = "admin"
)

// IsValid reports whether t is one of the known account roles.
func (t UserType) IsValid() bool {
	switch t {
	case UserTypeCandidate, UserTypeEmployer, UserTypeAdmin:
		return true
	}
	return false
}

func (t UserType) String() string { return string(t) }
