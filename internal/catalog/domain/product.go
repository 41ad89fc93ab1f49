package domain

// Money carries an amount in minor units (paisa for PKR).
type Money struct {
	Currency string
	Amount   int64
}

type Product struct {
	ID          string
	Name        string
	Description string
	Price       Money
	Sizes       []string
	Image       string
}
