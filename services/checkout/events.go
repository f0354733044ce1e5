package checkout

const (
	TopicName   = "checkout"
	startedName = TopicName + ".started"
)

type CheckoutStarted struct {
	SessionID   string
	UserID      string
	VehicleID   string
	AmountTotal int64
	Currency    string
}

func (e CheckoutStarted) GetEventTypeName() string {
	return startedName
}

func (e CheckoutStarted) GetAggregateName() string {
	return e.SessionID
}
