package model

// RequestType identifies the kind of master-data change a request carries.
// The set is closed: every request in the system has exactly one of these.
type RequestType string

const (
	TypeNewRecipe          RequestType = "NEW_RECIPE"
	TypeRecipeModification RequestType = "RECIPE_MODIFICATION"
	TypeVersionExtend      RequestType = "VERSION_EXTEND"
	TypeVersionRollback    RequestType = "VERSION_ROLLBACK"
	TypeNewSizeCode        RequestType = "NEW_SIZE_CODE"
	TypeNewInventory       RequestType = "NEW_INVENTORY"
	TypeUpdateInventory    RequestType = "UPDATE_INVENTORY"
	TypeExtraToppingUpdate RequestType = "EXTRA_TOPPING_UPDATE"
)

// RequestTypes lists every known request type in a fixed order.
var RequestTypes = []RequestType{
	TypeNewRecipe,
	TypeRecipeModification,
	TypeVersionExtend,
	TypeVersionRollback,
	TypeNewSizeCode,
	TypeNewInventory,
	TypeUpdateInventory,
	TypeExtraToppingUpdate,
}

// IsValid reports whether t is one of the known request types.
func (t RequestType) IsValid() bool {
	for _, known := range RequestTypes {
		if t == known {
			return true
		}
	}
	return false
}

// State is a named stage in a request's approval lifecycle.
type State string

const (
	StatePendingChef        State = "PENDING_CHEF"
	StatePendingCategory    State = "PENDING_CATEGORY"
	StatePendingSupplyChain State = "PENDING_SUPPLY_CHAIN"
	StatePendingQuality     State = "PENDING_QUALITY"
	StatePendingFinance     State = "PENDING_FINANCE"
	StatePendingMDM         State = "PENDING_MDM"
	StateAcknowledged       State = "ACKNOWLEDGED"
	StateInExecution        State = "IN_EXECUTION"
	StateLive               State = "LIVE"
	StateRejected           State = "REJECTED"
)

// IsTerminal reports whether no further transition is permitted out of s.
func (s State) IsTerminal() bool {
	return s == StateLive || s == StateRejected
}

// Team is the approver group a pending request is waiting on.
type Team string

const (
	TeamChef        Team = "Chef Team"
	TeamCategory    Team = "Category Team"
	TeamSupplyChain Team = "Supply Chain Team"
	TeamQuality     Team = "Quality Team"
	TeamFinance     Team = "Finance Team"
	TeamMDM         Team = "MDM Team"
)

// stateTeams maps each pending state to the team it is waiting on.
// Non-pending states have no owning team.
var stateTeams = map[State]Team{
	StatePendingChef:        TeamChef,
	StatePendingCategory:    TeamCategory,
	StatePendingSupplyChain: TeamSupplyChain,
	StatePendingQuality:     TeamQuality,
	StatePendingFinance:     TeamFinance,
	StatePendingMDM:         TeamMDM,
}

// PendingTeam returns the team the state is pending on, if any.
func (s State) PendingTeam() (Team, bool) {
	team, ok := stateTeams[s]
	return team, ok
}
