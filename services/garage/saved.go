package garage

import (
	"encoding/json"
)

// SavedVehicles is an ordered set of vehicle ids. The zero value is an empty set.
type SavedVehicles struct {
	ids []string
}

func NewSavedVehicles(ids ...string) *SavedVehicles {
	s := &SavedVehicles{}
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

func (s *SavedVehicles) Contains(id string) bool {
	for _, existing := range s.ids {
		if existing == id {
			return true
		}
	}
	return false
}

// Add returns false when the id was already saved.
func (s *SavedVehicles) Add(id string) bool {
	if id == "" || s.Contains(id) {
		return false
	}
	s.ids = append(s.ids, id)
	return true
}

func (s *SavedVehicles) Remove(id string) bool {
	for i, existing := range s.ids {
		if existing == id {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			return true
		}
	}
	return false
}

// Toggle saves an unsaved id and removes a saved one. It reports whether the id is saved afterwards.
func (s *SavedVehicles) Toggle(id string) bool {
	if s.Remove(id) {
		return false
	}
	return s.Add(id)
}

func (s *SavedVehicles) IDs() []string {
	return append([]string{}, s.ids...)
}

func (s *SavedVehicles) Len() int {
	return len(s.ids)
}

func (s SavedVehicles) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.IDs())
}

func (s *SavedVehicles) UnmarshalJSON(data []byte) error {
	ids := []string{}
	err := json.Unmarshal(data, &ids)
	if err != nil {
		return err
	}
	*s = *NewSavedVehicles(ids...)
	return nil
}
