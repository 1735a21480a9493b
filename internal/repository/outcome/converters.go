package outcome

import (
	"bookstore/internal/entities"
)

func ToDomain(o *OutcomeDB) *entities.NotificationOutcome {
	if o == nil {
		return nil
	}

	return &entities.NotificationOutcome{
		OrderID:   o.OrderID,
		Channel:   entities.Channel(o.Channel),
		Status:    entities.OutcomeStatus(o.Status),
		Attempts:  o.Attempts,
		Error:     o.LastError,
		UpdatedAt: o.UpdatedAt,
	}
}

func ToDomainList(outcomesDB []OutcomeDB) []*entities.NotificationOutcome {
	result := make([]*entities.NotificationOutcome, 0, len(outcomesDB))
	for i := range outcomesDB {
		result = append(result, ToDomain(&outcomesDB[i]))
	}
	return result
}
