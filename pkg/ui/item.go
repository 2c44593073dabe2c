package ui

import "github.com/pawview/pawview/pkg/pets"

// PetItem wraps pets.Pet to implement list.Item.
type PetItem struct {
	Pet      pets.Pet
	Favorite bool
}

func (i PetItem) Title() string {
	return i.Pet.Name
}

func (i PetItem) Description() string {
	return i.Pet.Summary()
}

func (i PetItem) FilterValue() string {
	return i.Pet.SearchText()
}
