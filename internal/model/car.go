package model

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Availability display states for a car.  These are advisory metadata for
// the catalogue: whether a booking may proceed is decided by the
// admission engine from confirmed reservations, never from this field.
// Only "maintenance" blocks bookings outright.
const (
	AvailabilityAvailable   = "available"
	AvailabilityReserved    = "reserved"
	AvailabilityMaintenance = "maintenance"
)

// Car represents a row of the `cars` table.  The owner's name is
// denormalized next to the owner id so listings render without a join.
// ImagesURL is persisted as a single JSON text blob.
//
// Fields:
//  ID           – primary key identifier.
//  Name         – model name shown in the catalogue.
//  Brand        – manufacturer.
//  PricePerDay  – rental price, always held at two-decimal scale.
//  City         – pickup city.
//  Availability – advisory display state (available/reserved/maintenance).
//  OwnerID      – owning user.
//  OwnerName    – denormalized owner display name.
//  MainImageURL – primary catalogue image.
//  ImagesURL    – ordered gallery image URLs (JSON blob in storage).
//  Seats        – seat count.
//  FuelType     – "Gasoline", "Diesel", "Electric", "Hybrid".
//  Gearbox      – "Manual" or "Automatic".
//  Latitude     – optional pickup latitude.
//  Longitude    – optional pickup longitude.
//  CreatedAt    – timestamp of creation.
//  UpdatedAt    – timestamp of last update.
type Car struct {
	ID           int64            `json:"id"`           // cars.id
	Name         string           `json:"name"`         // cars.name
	Brand        string           `json:"brand"`        // cars.brand
	PricePerDay  decimal.Decimal  `json:"pricePerDay"`  // cars.price_per_day
	City         string           `json:"city"`         // cars.city
	Availability string           `json:"availability"` // cars.availability
	OwnerID      int64            `json:"ownerId"`      // cars.owner_id
	OwnerName    string           `json:"ownerName"`    // cars.owner_name
	MainImageURL string           `json:"mainImageUrl"` // cars.main_image_url
	ImagesURL    []string         `json:"imagesUrl"`    // cars.images_url (JSON blob)
	Seats        int              `json:"seats"`        // cars.seats
	FuelType     string           `json:"fuelType"`     // cars.fuel_type
	Gearbox      string           `json:"gearbox"`      // cars.gearbox
	Latitude     *decimal.Decimal `json:"latitude"`     // cars.latitude (nullable)
	Longitude    *decimal.Decimal `json:"longitude"`    // cars.longitude (nullable)
	CreatedAt    time.Time        `json:"createdAt"`    // cars.created_at
	UpdatedAt    time.Time        `json:"updatedAt"`    // cars.updated_at
}

// InMaintenance reports whether the car is blocked for bookings.  The
// stored value is compared trimmed and case-insensitively, matching how
// the field arrives from older records.
func (c Car) InMaintenance() bool {
	return strings.EqualFold(strings.TrimSpace(c.Availability), AvailabilityMaintenance)
}
