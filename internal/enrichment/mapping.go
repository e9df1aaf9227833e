package enrichment

import (
	"github.com/losslocator/locator/pkg/query"
	"github.com/losslocator/locator/pkg/repository"
)

var propertyProjection = query.
	NewProjectionMap("public", "loss_properties", "p").
	Project("id", "ID").
	Project("event_id", "EventID").
	Project("owner_name", "OwnerName").
	Project("phone_primary", "PhonePrimary").
	Project("phone_confidence", "PhoneConfidence").
	Project("property_class", "PropertyClass")

var demographicProjection = query.
	NewProjectionMap("public", "zip_demographics", "z").
	Project("zip", "Zip").
	Project("income_percentile", "IncomePercentile")

func scanProperty(s repository.Scanner) (Property, error) {
	var p Property
	err := s.Scan(
		&p.ID,
		&p.EventID,
		&p.OwnerName,
		&p.PhonePrimary,
		&p.PhoneConfidence,
		&p.PropertyClass,
	)
	return p, err
}

func scanDemographic(s repository.Scanner) (ZipDemographic, error) {
	var z ZipDemographic
	err := s.Scan(&z.Zip, &z.IncomePercentile)
	return z, err
}
