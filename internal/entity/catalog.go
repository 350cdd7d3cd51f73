package entity

// Ocean event effect categories.
const (
	EventMoney           = "money"
	EventMove            = "move"
	EventAdvanceProperty = "advance_to_property"
	EventReturnProperty  = "return_to_last_property"
	EventSkipTurn        = "skip_turn"
	EventInspection      = "inspection"
	EventChoiceSalvage   = "choice_salvage"
	EventChoiceRoute     = "choice_route"
)

type OceanEvent struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Amount      int    `json:"amount,omitempty"`
	Spaces      int    `json:"spaces,omitempty"`
	SkipRent    bool   `json:"skip_rent,omitempty"`
}

// OceanEvents is the fixed ten-entry event catalog drawn from on event spaces.
var OceanEvents = []OceanEvent{
	{ID: 1, Name: "Favorable Wind", Description: "The currents are on your side! Advance to the next property rent-free.", Type: EventAdvanceProperty, SkipRent: true},
	{ID: 2, Name: "Whale Sighting", Description: "Marine research contract pays out.", Type: EventMoney, Amount: 300},
	{ID: 3, Name: "Brazil Current", Description: "The ocean current speeds up your voyage. Advance 5 spaces.", Type: EventMove, Spaces: 5},
	{ID: 4, Name: "Emergency Towage", Description: "A well-paid emergency tow.", Type: EventMoney, Amount: 500},
	{ID: 5, Name: "Tropical Storm", Description: "Adverse conditions force you back to the last property.", Type: EventReturnProperty},
	{ID: 6, Name: "Engine Breakdown", Description: "Emergency repairs needed.", Type: EventMoney, Amount: -200},
	{ID: 7, Name: "Hazard Zone", Description: "Dangerous waters. Preventive docking: lose your next turn.", Type: EventSkipTurn},
	{ID: 8, Name: "Navy Inspection", Description: "Maritime safety audit: full certificates earn a reward, gaps cost a fine.", Type: EventInspection},
	{ID: 9, Name: "Salvage Opportunity", Description: "A vessel in distress requests assistance.", Type: EventChoiceSalvage},
	{ID: 10, Name: "Route Choice", Description: "Two routes to your destination.", Type: EventChoiceRoute},
}

type LuckCard struct {
	Text   string `json:"text"`
	Amount int    `json:"amount"`
}

// LuckCards are the four fixed-effect cards behind luck and surprise spaces.
var LuckCards = []LuckCard{
	{Text: "Found lost cargo!", Amount: 100},
	{Text: "Environmental fine!", Amount: -100},
	{Text: "Unscheduled maintenance!", Amount: -50},
	{Text: "Contract bonus!", Amount: 150},
}

type Question struct {
	Text    string   `json:"text"`
	Options []string `json:"options"`
	Correct string   `json:"correct"`
}

// TrainingQuestions is the certification exam bank, keyed by certificate kind.
var TrainingQuestions = map[string][]Question{
	CertFire: {
		{
			Text:    "What is the first action upon discovering a fire on board?",
			Options: []string{"Abandon ship immediately", "Fight it with sea water", "Sound the general alarm", "Contact the shipowner"},
			Correct: "Sound the general alarm",
		},
		{
			Text:    "Which fire class involves flammable liquids?",
			Options: []string{"Class A", "Class B", "Class C", "Class D"},
			Correct: "Class B",
		},
	},
	CertRescue: {
		{
			Text:    "Which maneuver is used to recover a man overboard?",
			Options: []string{"Scharnow turn", "Williamson turn", "Anderson turn", "Boutakov turn"},
			Correct: "Williamson turn",
		},
		{
			Text:    "What should be thrown first for a man overboard?",
			Options: []string{"Life jacket", "Ring buoy", "Knotted line", "Boarding ladder"},
			Correct: "Ring buoy",
		},
	},
	CertCollision: {
		{
			Text:    "What is the golden rule for avoiding collisions at sea?",
			Options: []string{"Engines always ready", "Constant lookout", "Reduced speed", "Continuous sound signals"},
			Correct: "Constant lookout",
		},
		{
			Text:    "In a risk-of-collision situation, which vessel must give way?",
			Options: []string{"The smaller vessel", "The one that sights first", "The one with the other to port", "The one with the other to starboard"},
			Correct: "The one with the other to starboard",
		},
	},
	CertAbandon: {
		{
			Text:    "Which sound signal means abandon ship?",
			Options: []string{"One long blast", "Three short blasts", "Seven short blasts and one long", "Two long blasts"},
			Correct: "Seven short blasts and one long",
		},
		{
			Text:    "What is an EPIRB?",
			Options: []string{"First-aid equipment", "Emergency position-indicating radio beacon", "Personal protective equipment", "Portable fire extinguisher"},
			Correct: "Emergency position-indicating radio beacon",
		},
	},
}
