package models

type Payment struct {
	ID            int64   `json:"id"`
	BookingID     int64   `json:"bookingId"`
	CustomerID    int64   `json:"customerId"`
	Amount        float64 `json:"amount"`
	Status        string  `json:"status"`
	PaymentMethod string  `json:"paymentMethod"`
	CreatedAt     string  `json:"createdAt"`
}

// PaymentRequest is the body of POST /payments/process-payment.
type PaymentRequest struct {
	BookingID     int64  `json:"bookingId"`
	PaymentMethod string `json:"paymentMethod"`
}

// PaymentMethods accepted by the payment form.
var PaymentMethods = []string{"CreditCard", "DebitCard", "PayPal", "UPI"}
