package model

import (
	"encoding/json"
	"fmt"
)

// Payload is the type-specific body of a request. Each request type maps to
// exactly one concrete payload variant; code interpreting a request switches
// on the request type and asserts the matching variant.
type Payload interface {
	isPayload()
}

// RecipeRowEntry is one proposed recipe ingredient line in a recipe payload.
type RecipeRowEntry struct {
	ProductCode   string  `json:"product_code"`
	InventoryCode string  `json:"inventory_code"`
	SizeCode      string  `json:"size_code"`
	Grammage      float64 `json:"grammage"`
}

// RecipeRowsPayload carries the proposed recipe lines for NEW_RECIPE and
// RECIPE_MODIFICATION requests.
type RecipeRowsPayload struct {
	Rows []RecipeRowEntry `json:"rows"`
}

func (RecipeRowsPayload) isPayload() {}

// InventoryRowEntry is one proposed inventory item line.
type InventoryRowEntry struct {
	Code          string `json:"code"`
	Description   string `json:"description"`
	UnitOfMeasure string `json:"unit_of_measure"`
	Category      string `json:"category"`
}

// InventoryRowsPayload carries item lines for NEW_INVENTORY and
// UPDATE_INVENTORY requests.
type InventoryRowsPayload struct {
	Rows []InventoryRowEntry `json:"rows"`
}

func (InventoryRowsPayload) isPayload() {}

// VersionActionPayload carries the target version for VERSION_EXTEND and
// VERSION_ROLLBACK requests.
type VersionActionPayload struct {
	TargetVersion string   `json:"target_version"`
	StoreIDs      []string `json:"store_ids,omitempty"`
}

func (VersionActionPayload) isPayload() {}

// SizeCodePayload carries the proposed size code for NEW_SIZE_CODE requests.
type SizeCodePayload struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

func (SizeCodePayload) isPayload() {}

// ToppingRowEntry is one proposed extra-topping line.
type ToppingRowEntry struct {
	Code        string  `json:"code"`
	Description string  `json:"description"`
	Grammage    float64 `json:"grammage"`
}

// ToppingRowsPayload carries topping lines for EXTRA_TOPPING_UPDATE requests.
type ToppingRowsPayload struct {
	Rows []ToppingRowEntry `json:"rows"`
}

func (ToppingRowsPayload) isPayload() {}

// DecodePayload unmarshals raw JSON into the payload variant for the given
// request type. The switch is exhaustive over RequestTypes; an unknown type
// is an error, never a silent nil payload.
func DecodePayload(t RequestType, raw json.RawMessage) (Payload, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("empty payload for request type %s", t)
	}

	switch t {
	case TypeNewRecipe, TypeRecipeModification:
		var p RecipeRowsPayload
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("failed to decode recipe payload: %w", err)
		}
		return p, nil
	case TypeVersionExtend, TypeVersionRollback:
		var p VersionActionPayload
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("failed to decode version payload: %w", err)
		}
		return p, nil
	case TypeNewSizeCode:
		var p SizeCodePayload
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("failed to decode size code payload: %w", err)
		}
		return p, nil
	case TypeNewInventory, TypeUpdateInventory:
		var p InventoryRowsPayload
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("failed to decode inventory payload: %w", err)
		}
		return p, nil
	case TypeExtraToppingUpdate:
		var p ToppingRowsPayload
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("failed to decode topping payload: %w", err)
		}
		return p, nil
	default:
		return nil, fmt.Errorf("unknown request type: %s", t)
	}
}
