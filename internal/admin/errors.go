package admin

import "fmt"

// ValidationError signale un champ requis manquant sur un formulaire.
// L'opération est abandonnée sans écriture partielle.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("champ requis manquant: %s", e.Field)
}

// DuplicateError signale une catégorie déjà présente (après normalisation).
type DuplicateError struct {
	Name string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("la catégorie %q existe déjà", e.Name)
}

// ReservedNameError signale l'usage du nom réservé "all".
type ReservedNameError struct {
	Name string
}

func (e *ReservedNameError) Error() string {
	return fmt.Sprintf("le nom %q est réservé", e.Name)
}
