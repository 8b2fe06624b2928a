package entities

// Notification is delivered best effort: a persistent in-app record plus a
// push message when the recipient has a registered device token. Delivery
// failures never fail the operation that produced the notification.
type Notification struct {
	RecipientID string
	Message     string
	OrderID     string
	PushToken   string
}
