package catalog

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const featuredCount = 6

type Lookup interface {
	VehicleByID(id string) (Vehicle, bool)
}

// Catalog serves the static brokerage content. All getters hand out copies.
type Catalog struct {
	vehicles []Vehicle
}

func New() *Catalog {
	return &Catalog{
		vehicles: vehicles,
	}
}

func (c *Catalog) Vehicles() []Vehicle {
	return append([]Vehicle{}, c.vehicles...)
}

func (c *Catalog) Featured() []Vehicle {
	if len(c.vehicles) < featuredCount {
		return c.Vehicles()
	}
	return append([]Vehicle{}, c.vehicles[:featuredCount]...)
}

func (c *Catalog) VehicleByID(id string) (Vehicle, bool) {
	for _, v := range c.vehicles {
		if v.ID == id {
			return v, true
		}
	}
	return Vehicle{}, false
}

func (c *Catalog) VehiclesByBrand(brand string) []Vehicle {
	result := []Vehicle{}
	for _, v := range c.vehicles {
		if strings.EqualFold(v.Brand, brand) {
			result = append(result, v)
		}
	}
	return result
}

func (c *Catalog) VehicleBrands() []string {
	return distinct(c.vehicles, func(v Vehicle) string { return v.Brand })
}

func (c *Catalog) VehicleTypes() []string {
	return distinct(c.vehicles, func(v Vehicle) string { return v.Type })
}

func (c *Catalog) Brands() []Brand {
	return append([]Brand{}, brands...)
}

func (c *Catalog) Reviews() []Review {
	return append([]Review{}, reviews...)
}

func (c *Catalog) EngineeringStats() []EngineeringStat {
	return append([]EngineeringStat{}, engineeringStats...)
}

func (c *Catalog) StorySteps() []StoryStep {
	return append([]StoryStep{}, storySteps...)
}

func distinct(vehicles []Vehicle, key func(v Vehicle) string) []string {
	seen := map[string]bool{}
	result := []string{}
	for _, v := range vehicles {
		k := key(v)
		if !seen[k] {
			seen[k] = true
			result = append(result, k)
		}
	}
	return result
}

// ParsePrice converts a display price such as "$223,800" or "$1,250.50" into minor units.
func ParsePrice(display string) (int64, error) {
	cleaned := strings.TrimSpace(display)
	cleaned = strings.TrimPrefix(cleaned, "$")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	if cleaned == "" {
		return 0, fmt.Errorf("empty price")
	}

	whole, fraction, hasFraction := strings.Cut(cleaned, ".")
	if !onlyDigits(whole) {
		return 0, fmt.Errorf("invalid price %q", display)
	}
	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil || units > math.MaxInt64/100-1 {
		return 0, fmt.Errorf("invalid price %q", display)
	}

	cents := int64(0)
	if hasFraction {
		if len(fraction) == 0 || len(fraction) > 2 || !onlyDigits(fraction) {
			return 0, fmt.Errorf("invalid price %q", display)
		}
		if len(fraction) == 1 {
			fraction += "0"
		}
		cents, _ = strconv.ParseInt(fraction, 10, 64)
	}

	amount := units*100 + cents
	if amount <= 0 {
		return 0, fmt.Errorf("price %q must be positive", display)
	}
	return amount, nil
}

func onlyDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
