package auth

const (
	TopicName     = "auth"
	signedUpName  = TopicName + ".signedUp"
	signedInName  = TopicName + ".signedIn"
	signedOutName = TopicName + ".signedOut"
)

type SignedUp struct {
	UserUID  string
	Email    string
	Provider string
}

func (e SignedUp) GetEventTypeName() string {
	return signedUpName
}

func (e SignedUp) GetAggregateName() string {
	return e.UserUID
}

type SignedIn struct {
	UserUID  string
	Provider string
	At       string
}

func (e SignedIn) GetEventTypeName() string {
	return signedInName
}

func (e SignedIn) GetAggregateName() string {
	return e.UserUID
}

type SignedOut struct {
	UserUID string
	At      string
}

func (e SignedOut) GetEventTypeName() string {
	return signedOutName
}

func (e SignedOut) GetAggregateName() string {
	return e.UserUID
}
