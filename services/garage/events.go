package garage

const (
	TopicName          = "garage"
	vehicleSavedName   = TopicName + ".vehicleSaved"
	vehicleRemovedName = TopicName + ".vehicleRemoved"
)

type VehicleSaved struct {
	UserUID   string
	VehicleID string
	At        string
}

func (e VehicleSaved) GetEventTypeName() string {
	return vehicleSavedName
}

func (e VehicleSaved) GetAggregateName() string {
	return e.UserUID
}

type VehicleRemoved struct {
	UserUID   string
	VehicleID string
	At        string
}

func (e VehicleRemoved) GetEventTypeName() string {
	return vehicleRemovedName
}

func (e VehicleRemoved) GetAggregateName() string {
	return e.UserUID
}
