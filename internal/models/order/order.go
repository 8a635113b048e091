package order

import "time"

type Status string

const (
	Active    Status = "Active"
	Completed Status = "Completed"
)

// Toggled returns the opposite status. The enum is closed: anything
// that is not Completed flips to Completed.
func (s Status) Toggled() Status {
	if s == Completed {
		return Active
	}
	return Completed
}

// DateLayout is the display format order and delivery dates are
// stored in, e.g. "Jan 2, 2006".
const DateLayout = "Jan 2, 2006"

// Order is a single trackable work item. Amounts and dates are kept
// as the text the user entered. CreatorMail is set once at creation
// and is the sole visibility boundary for listing.
type Order struct {
	ID           string `db:"id"`
	Name         string `db:"order"`
	Product      string `db:"product"`
	Client       string `db:"client"`
	Phone        string `db:"phone"`
	OrderDate    string `db:"order_date"`
	DeliveryDate string `db:"delivery_date"`
	TotalAmount  string `db:"total_amount"`
	PaidAmount   string `db:"paid_amount"`
	ToPayAmount  string `db:"to_pay_amount"`
	Details      string `db:"details"`
	Status       Status `db:"status"`
	CreatorMail  string `db:"creator_mail"`
}

// DeliveryTime parses the stored delivery date for sorting.
// Unparseable strings resolve to now, which leaves such orders
// effectively unordered rather than failing the sort.
func (o *Order) DeliveryTime(now time.Time) time.Time {
	t, err := time.Parse(DateLayout, o.DeliveryDate)
	if err != nil {
		return now
	}
	return t
}
