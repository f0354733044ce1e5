package warmup

const (
	TopicName        = "warmup"
	warmupKickedName = TopicName + ".kicked"
)

// WarmupKicked announces that a fresh instance has been warmed up and is ready to serve.
type WarmupKicked struct {
	UID string
	At  string
}

func (e WarmupKicked) GetEventTypeName() string {
	return warmupKickedName
}

func (e WarmupKicked) GetAggregateName() string {
	return e.UID
}
