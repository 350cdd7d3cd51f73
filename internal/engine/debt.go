package engine

import (
	"github.com/seaportlabs/harborlord-backend/internal/entity"
)

// liquidable is one sellable asset during an escalation, in sale order.
type liquidable struct {
	kind     string
	spacePos int
	value    int
}

// handleMandatoryPayment settles a payment the player cannot refuse. With
// enough cash the debit and credit are atomic; otherwise it escalates into
// forced liquidation or bankruptcy and never leaves the debt unresolved.
// Returns true when the payment was made in cash.
func (that *Engine) handleMandatoryPayment(player *entity.Player, amount int, reason string, recipient *entity.Player, result *Result) bool {
	if player.Money >= amount {
		player.Money -= amount
		if recipient != nil {
			recipient.Money += amount
		}
		result.noticef("%s paid %d (%s)", player.Name, amount, reason)
		return true
	}

	that.initiateArrest(player, amount, reason, recipient, result)

	return false
}

// initiateArrest decides between forced liquidation and bankruptcy based on
// the player's total liquidatable value.
func (that *Engine) initiateArrest(player *entity.Player, debt int, reason string, creditor *entity.Player, result *Result) {
	player.BankruptcyStage = entity.LiquidationStage

	assets := that.liquidableAssets(player)

	totalValue := 0
	for _, asset := range assets {
		totalValue += asset.value
	}

	if player.Money+totalValue >= debt {
		result.noticef("%s cannot pay %d (%s): forced liquidation", player.Name, debt, reason)
		that.forceLiquidation(player, debt, assets, creditor, result)
		return
	}

	result.noticef("%s cannot cover %d (%s) even by liquidating everything", player.Name, debt, reason)
	that.declareBankruptcy(player, result)
}

// liquidableAssets lists the player's assets in the fixed sale order:
// properties in acquisition order, then port tugs, ocean tug, tuglord.
func (that *Engine) liquidableAssets(player *entity.Player) []liquidable {
	var assets []liquidable

	for _, pos := range player.Properties {
		space := that.game.SpaceAt(pos)
		assets = append(assets, liquidable{
			kind:     "property",
			spacePos: pos,
			value:    space.Price * that.rules.LiquidationPct / 100,
		})
	}

	for i := 0; i < player.PortTugs; i++ {
		assets = append(assets, liquidable{kind: entity.TugPort, value: that.rules.PortTugValue})
	}
	if player.HasOceanTug {
		assets = append(assets, liquidable{kind: entity.TugOcean, value: that.rules.OceanTugValue})
	}
	if player.HasTuglord {
		assets = append(assets, liquidable{kind: entity.TugTuglord, value: that.rules.TuglordValue})
	}

	return assets
}

// forceLiquidation sells assets one at a time, cash counted first, stopping
// the instant raised funds cover the debt. The creditor receives the full
// debt amount; any surplus over the debt returns to the player.
func (that *Engine) forceLiquidation(player *entity.Player, debt int, assets []liquidable, creditor *entity.Player, result *Result) {
	raised := player.Money

	for _, asset := range assets {
		if raised >= debt {
			break
		}

		switch asset.kind {
		case "property":
			that.releaseProperty(player, asset.spacePos)
			result.noticef("%s: %s sold off for %d", player.Name, that.game.SpaceAt(asset.spacePos).Name, asset.value)
		case entity.TugPort:
			player.PortTugs--
			if player.DockedTugs.Port > player.PortTugs {
				player.DockedTugs.Port = player.PortTugs
			}
		case entity.TugOcean:
			player.HasOceanTug = false
			player.DockedTugs.Ocean = false
		case entity.TugTuglord:
			player.HasTuglord = false
			player.DockedTugs.Tuglord = false
		}

		raised += asset.value
	}

	cashUsed := player.Money
	if cashUsed > debt {
		cashUsed = debt
	}
	player.Money -= cashUsed

	if creditor != nil {
		creditor.Money += debt
	}

	if surplus := raised - debt; surplus > 0 {
		player.Money += surplus
	}

	player.BankruptcyStage = entity.SolventStage

	result.noticef("%s: debt of %d settled through liquidation", player.Name, debt)
}

// declareBankruptcy eliminates the player: every property is released, the
// fleet and cash are zeroed and the player leaves the turn rotation for
// good. If a single active player remains they win the game.
func (that *Engine) declareBankruptcy(player *entity.Player, result *Result) {
	player.BankruptcyStage = entity.EliminatedStage
	player.IsEliminated = true

	for _, pos := range player.Properties {
		space := that.game.SpaceAt(pos)
		space.Owner = 0
		that.clearStockPositions(pos)
	}

	for pos := range player.Stocks {
		space := that.game.SpaceAt(pos)
		space.Stocks -= player.Stocks[pos]
		if space.Stocks < 0 {
			space.Stocks = 0
		}
	}

	player.Money = 0
	player.Properties = []int{}
	player.Stocks = map[int]int{}
	player.Loans = []entity.Loan{}
	player.PortTugs = 0
	player.HasOceanTug = false
	player.HasTuglord = false
	player.DockedTugs = entity.DockedTugs{}

	result.noticef("%s is bankrupt and eliminated", player.Name)

	that.checkForWinner(result)
}

// releaseProperty returns a space to the bank and wipes every stock position
// held in it, keeping the global share count consistent.
func (that *Engine) releaseProperty(player *entity.Player, pos int) {
	space := that.game.SpaceAt(pos)
	space.Owner = 0
	that.clearStockPositions(pos)
	player.RemoveProperty(pos)
}

func (that *Engine) clearStockPositions(pos int) {
	that.game.SpaceAt(pos).Stocks = 0
	for _, player := range that.game.Players {
		delete(player.Stocks, pos)
	}
}

func (that *Engine) checkForWinner(result *Result) {
	active := that.game.ActivePlayers()
	if len(active) != 1 {
		return
	}

	winner := active[0]
	that.game.Phase = entity.PhaseFinished
	that.game.WinnerID = winner.ID
	that.game.Pending = nil

	result.noticef("%s wins the game!", winner.Name)
}
