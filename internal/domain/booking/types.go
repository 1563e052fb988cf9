package booking

type Status string

const (
	StatusConfirmed Status = "confirmed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return s == StatusConfirmed
}
