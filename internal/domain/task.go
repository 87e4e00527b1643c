package domain

// Task is a duty performed during a shift, e.g. "Wave pool watch".
type Task struct {
	ID                    int64
	Name                  string
	Description           *string
	CertificationRequired *string
}
