package engine

import "github.com/seaportlabs/harborlord-backend/internal/entity"

// drawLuckCard applies one of the four fixed-effect luck/surprise cards.
// Negative amounts go through the debt resolver.
func (that *Engine) drawLuckCard(current *entity.Player, result *Result) {
	card := entity.LuckCards[that.rng.Intn(len(entity.LuckCards))]

	if card.Amount >= 0 {
		current.Money += card.Amount
		result.noticef("%s %+d", card.Text, card.Amount)
		return
	}

	result.noticef("%s %+d", card.Text, card.Amount)
	that.handleMandatoryPayment(current, -card.Amount, "luck card", nil, result)
}

// drawOceanEvent draws uniformly from the ten-entry ocean catalog and applies
// its effect. Binary-choice events park a pending prompt instead.
func (that *Engine) drawOceanEvent(current *entity.Player, result *Result) {
	event := entity.OceanEvents[that.rng.Intn(len(entity.OceanEvents))]
	that.applyOceanEvent(current, event, result)
}

func (that *Engine) applyOceanEvent(current *entity.Player, event entity.OceanEvent, result *Result) {
	result.noticef("%s: %s", event.Name, event.Description)

	switch event.Type {
	case entity.EventMoney:
		if event.Amount >= 0 {
			current.Money += event.Amount
			return
		}
		that.handleMandatoryPayment(current, -event.Amount, event.Name, nil, result)

	case entity.EventMove:
		that.movePlayer(event.Spaces, result)

	case entity.EventAdvanceProperty:
		that.advanceToNextProperty(event.SkipRent, result)

	case entity.EventReturnProperty:
		that.returnToLastProperty(result)

	case entity.EventSkipTurn:
		current.SkipNextTurn = true

	case entity.EventInspection:
		that.resolveInspection(current, result)

	case entity.EventChoiceSalvage:
		that.game.Pending = &entity.Pending{
			Kind:    entity.PendingEventChoice,
			EventID: event.ID,
			Options: []entity.Option{
				{ID: "accept", Label: "Accept: +400 but lose next turn"},
				{ID: "decline", Label: "Decline and sail on"},
			},
		}

	case entity.EventChoiceRoute:
		that.game.Pending = &entity.Pending{
			Kind:    entity.PendingEventChoice,
			EventID: event.ID,
			Options: []entity.Option{
				{ID: "north", Label: "North route: advance 3 spaces"},
				{ID: "south", Label: "South route: +250"},
			},
		}
	}
}

func (that *Engine) resolveInspection(current *entity.Player, result *Result) {
	if current.HasAllBaseCertificates() {
		current.Money += that.rules.InspectionReward
		result.noticef("%s passed the inspection: +%d", current.Name, that.rules.InspectionReward)
		return
	}

	result.noticef("%s is missing certificates: fine %d", current.Name, that.rules.InspectionFine)
	that.handleMandatoryPayment(current, that.rules.InspectionFine, "inspection fine", nil, result)
}

func (that *Engine) resolveEventChoice(optionID string, result *Result) {
	current := that.game.CurrentPlayer()

	switch {
	case optionID == "accept":
		current.Money += 400
		current.SkipNextTurn = true
		result.noticef("%s accepted the salvage: +400, next turn lost", current.Name)

	case optionID == "decline":
		result.noticef("%s declined the salvage", current.Name)

	case optionID == "north":
		result.noticef("%s takes the north route", current.Name)
		that.movePlayer(3, result)

	case optionID == "south":
		current.Money += 250
		result.noticef("%s takes the south route: +250", current.Name)
	}
}
