package engine

import (
	"fmt"

	"github.com/seaportlabs/harborlord-backend/internal/apperror"
	"github.com/seaportlabs/harborlord-backend/internal/entity"
)

// resolveLanding dispatches the landed space's rule. One landing produces
// exactly one resolution; anything needing a player decision is parked in
// game.Pending and finished through a follow-up call.
func (that *Engine) resolveLanding(result *Result) {
	current := that.game.CurrentPlayer()
	space := that.game.SpaceAt(current.Position)

	switch space.Type {
	case entity.SpacePort, entity.SpaceWorkshop, entity.SpaceService:
		that.resolveOwnableSpace(current, space, result)

	case entity.SpaceTugPurchase:
		that.offerTug(current, space, result)

	case entity.SpaceBank:
		result.noticef("Bank services available: loans, repayments, liquidation")

	case entity.SpaceStockExchange:
		result.noticef("Stock exchange open: buy shares in other captains' ports")

	case entity.SpaceTraining:
		that.offerTraining(current, space, result)

	case entity.SpaceUniversity:
		that.visitUniversity(current, result)

	case entity.SpaceTax:
		result.noticef("%s: port authority tax of %d due", current.Name, space.Amount)
		that.handleMandatoryPayment(current, space.Amount, "tax", nil, result)

	case entity.SpaceLuck, entity.SpaceSurprise:
		that.drawLuckCard(current, result)

	case entity.SpaceEvent:
		that.drawOceanEvent(current, result)

	case entity.SpaceTuglordCert:
		if current.HasTuglord {
			result.noticef("Tuglord certification active")
		} else {
			result.noticef("Tuglord certification office: commission a tuglord at a shipyard you own")
		}

	case entity.SpaceContract:
		current.Money += space.Amount
		result.noticef("%s executed %s: +%d", current.Name, space.Name, space.Amount)

	default: // start, corner
		result.noticef("%s rests at %s", current.Name, space.Name)
	}
}

func (that *Engine) resolveOwnableSpace(current *entity.Player, space *entity.Space, result *Result) {
	if !space.IsOwned() {
		that.game.Pending = &entity.Pending{
			Kind:     entity.PendingPurchase,
			SpacePos: space.Pos,
			Options: []entity.Option{
				{ID: "buy", Label: fmt.Sprintf("Buy for %d", space.Price)},
				{ID: "pass", Label: "Pass"},
			},
		}
		result.noticef("%s is for sale: %d", space.Name, space.Price)
		return
	}

	if space.Owner == current.ID {
		that.resolveOwnVisit(current, space, result)
		that.checkShipyardDocking(current, space, result)
		return
	}

	owner, err := that.game.PlayerByID(space.Owner)
	if err != nil {
		// Ownership should never dangle; treat as unowned rather than crash.
		space.Owner = 0
		return
	}

	that.chargeVisitorFee(current, owner, space, result)
	that.checkShipyardDocking(current, space, result)
}

func (that *Engine) resolveOwnVisit(current *entity.Player, space *entity.Space, result *Result) {
	switch space.Type {
	case entity.SpaceWorkshop:
		if space.Certificate != "" && !current.HasCertificate(space.Certificate) {
			current.GrantCertificate(space.Certificate)
			result.noticef("%s received the %s certificate from their own workshop", current.Name, space.Certificate)
			return
		}
		result.noticef("%s manages this workshop", current.Name)

	case entity.SpaceService:
		if space.TuglordBuildCost > 0 && !current.HasTuglord {
			result.noticef("Your shipyard can commission a tuglord for %d", space.TuglordBuildCost)
			return
		}
		result.noticef("%s owns this service", current.Name)

	default:
		result.noticef("%s owns this port", current.Name)
	}
}

func (that *Engine) chargeVisitorFee(current, owner *entity.Player, space *entity.Space, result *Result) {
	var fee int
	var reason string

	switch space.Type {
	case entity.SpacePort:
		fee = CalculateRent(space, owner)
		reason = "rent"
	case entity.SpaceWorkshop:
		fee = space.ServiceFee
		reason = "service fee"
	default:
		result.noticef("%s belongs to %s", space.Name, owner.Name)
		return
	}

	if current.SkipNextRent {
		current.SkipNextRent = false
		result.noticef("Favorable wind: %s waived for %s", reason, current.Name)
		return
	}

	result.noticef("%s owes %s %d (%s, %s)", current.Name, owner.Name, fee, reason, space.Name)
	that.handleMandatoryPayment(current, fee, reason, owner, result)
}

// checkShipyardDocking forces the mandatory docking choice at shipyards when
// the visitor has any operative fleet unit. Purchase offers take precedence
// on unowned shipyards, so this only runs for owned ones.
func (that *Engine) checkShipyardDocking(current *entity.Player, space *entity.Space, result *Result) {
	if space.TuglordBuildCost == 0 || that.game.Pending != nil || current.IsEliminated {
		return
	}

	var options []entity.Option
	if current.OperativePortTugs() > 0 {
		options = append(options, entity.Option{ID: entity.TugPort, Label: fmt.Sprintf("Dock a harbor tug (%d operative)", current.OperativePortTugs())})
	}
	if current.OperativeOceanTug() {
		options = append(options, entity.Option{ID: entity.TugOcean, Label: "Dock the ocean tug"})
	}
	if current.OperativeTuglord() {
		options = append(options, entity.Option{ID: entity.TugTuglord, Label: "Dock the tuglord"})
	}

	if len(options) == 0 {
		return
	}

	that.game.Pending = &entity.Pending{
		Kind:     entity.PendingDocking,
		SpacePos: space.Pos,
		Options:  options,
	}
	result.noticef("Mandatory docking at %s: fee %d", space.Name, that.rules.DockingFee)
}

func (that *Engine) offerTug(current *entity.Player, space *entity.Space, result *Result) {
	if space.TugType == entity.TugOcean && current.HasOceanTug {
		result.noticef("%s already owns an ocean tug", current.Name)
		return
	}

	that.game.Pending = &entity.Pending{
		Kind:     entity.PendingTugPurchase,
		SpacePos: space.Pos,
		Options: []entity.Option{
			{ID: "buy", Label: fmt.Sprintf("Buy %s tug for %d", space.TugType, space.Price)},
			{ID: "pass", Label: "Not now"},
		},
	}
	result.noticef("%s tug available for %d", space.TugType, space.Price)
}

// AcceptPending confirms the current purchase or training offer. Voluntary
// spends fail recoverably on short funds and leave the offer open.
func (that *Engine) AcceptPending() (*Result, error) {
	if err := that.game.ConfirmPlaying(); err != nil {
		return nil, err
	}

	pending := that.game.Pending
	if pending == nil {
		return nil, apperror.ErrNoPendingAction
	}

	current := that.game.CurrentPlayer()
	space := that.game.SpaceAt(pending.SpacePos)
	result := &Result{}

	switch pending.Kind {
	case entity.PendingPurchase:
		if current.Money < space.Price {
			return nil, apperror.ErrInsufficientFunds
		}

		current.Money -= space.Price
		space.Owner = current.ID
		current.AddProperty(space.Pos)
		result.noticef("%s acquired %s", current.Name, space.Name)

	case entity.PendingTugPurchase:
		if current.Money < space.Price {
			return nil, apperror.ErrInsufficientFunds
		}

		current.Money -= space.Price
		if space.TugType == entity.TugOcean {
			current.HasOceanTug = true
		} else {
			current.PortTugs++
		}
		result.noticef("%s acquired a %s tug", current.Name, space.TugType)

	case entity.PendingTrainingOffer:
		if current.Money < space.Price {
			return nil, apperror.ErrInsufficientFunds
		}

		current.Money -= space.Price
		that.game.Pending = nil
		that.presentExam(space.Certificate, result)
		return result, nil

	default:
		return nil, fmt.Errorf("%w: %s", apperror.ErrInvalidChoice, pending.Kind)
	}

	that.game.Pending = nil

	return result, nil
}

// DeclinePending dismisses a voluntary offer. Mandatory prompts (docking,
// event choices, exams) cannot be declined.
func (that *Engine) DeclinePending() (*Result, error) {
	if err := that.game.ConfirmPlaying(); err != nil {
		return nil, err
	}

	pending := that.game.Pending
	if pending == nil {
		return nil, apperror.ErrNoPendingAction
	}

	switch pending.Kind {
	case entity.PendingPurchase, entity.PendingTugPurchase, entity.PendingTrainingOffer:
		that.game.Pending = nil
		return &Result{}, nil
	default:
		return nil, fmt.Errorf("%w: cannot decline %s", apperror.ErrInvalidChoice, pending.Kind)
	}
}

// ResolveChoice finishes a docking or binary event prompt with one of its
// presented options. Each prompt is resolvable exactly once.
func (that *Engine) ResolveChoice(optionID string) (*Result, error) {
	if err := that.game.ConfirmPlaying(); err != nil {
		return nil, err
	}

	pending := that.game.Pending
	if pending == nil {
		return nil, apperror.ErrNoPendingAction
	}

	if !pendingHasOption(pending, optionID) {
		return nil, fmt.Errorf("%w: %q", apperror.ErrInvalidChoice, optionID)
	}

	result := &Result{}

	switch pending.Kind {
	case entity.PendingDocking:
		that.game.Pending = nil
		that.executeDocking(optionID, pending.SpacePos, result)

	case entity.PendingEventChoice:
		that.game.Pending = nil
		that.resolveEventChoice(optionID, result)

	default:
		return nil, fmt.Errorf("%w: %s", apperror.ErrInvalidChoice, pending.Kind)
	}

	return result, nil
}

func pendingHasOption(pending *entity.Pending, optionID string) bool {
	for _, option := range pending.Options {
		if option.ID == optionID {
			return true
		}
	}
	return false
}

// executeDocking pays the docking fee (to the shipyard owner, or the bank)
// and immobilizes the chosen fleet unit for the configured turn count.
func (that *Engine) executeDocking(tugType string, spacePos int, result *Result) {
	current := that.game.CurrentPlayer()
	space := that.game.SpaceAt(spacePos)

	var owner *entity.Player
	if space.IsOwned() && space.Owner != current.ID {
		owner, _ = that.game.PlayerByID(space.Owner)
	}

	if !that.handleMandatoryPayment(current, that.rules.DockingFee, "docking", owner, result) {
		return
	}

	switch tugType {
	case entity.TugPort:
		current.DockedTugs.Port = 1
	case entity.TugOcean:
		current.DockedTugs.Ocean = true
	case entity.TugTuglord:
		current.DockedTugs.Tuglord = true
	}
	current.DockedTugs.TurnsRemaining = that.rules.DockingTurns

	result.noticef("%s: tug docked for %d turns", current.Name, that.rules.DockingTurns)
}
