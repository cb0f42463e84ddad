package sentinel

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Recipe is a sentinel's reconstruction recipe: not the object itself, but
// the four values needed to re-obtain it. This is the exact external
// representation crossing any serialization or persistence boundary. The
// byte encoding below is JSON, but a persistence layer is free to carry the
// four fields any way it likes (see the recipestore package).
type Recipe struct {
	Name      string `json:"name"`
	Display   string `json:"display"`
	Truthy    bool   `json:"truthy"`
	Namespace string `json:"namespace"`
}

// MarshalRecipe encodes a recipe as JSON. Pure; the inverse of
// UnmarshalRecipe.
func MarshalRecipe(recipe Recipe) ([]byte, error) {
	data := []byte(`{}`)

	var err error
	for _, field := range []struct {
		path  string
		value any
	}{
		{"name", recipe.Name},
		{"display", recipe.Display},
		{"truthy", recipe.Truthy},
		{"namespace", recipe.Namespace},
	} {
		data, err = sjson.SetBytes(data, field.path, field.value)
		if err != nil {
			return nil, fmt.Errorf("sentinel: encoding recipe field %q: %w", field.path, err)
		}
	}

	return data, nil
}

// UnmarshalRecipe decodes a JSON-encoded recipe. A recipe without a name is
// rejected with *InvalidNameError since it could never identify a sentinel.
// Feed the result through Registry.FromRecipe to finish deserialization.
func UnmarshalRecipe(data []byte) (Recipe, error) {
	if !gjson.ValidBytes(data) {
		return Recipe{}, errors.New("sentinel: recipe is not valid JSON")
	}

	results := gjson.GetManyBytes(data, "name", "display", "truthy", "namespace")

	name := results[0].String()
	if name == "" {
		return Recipe{}, &InvalidNameError{Name: name}
	}

	return Recipe{
		Name:      name,
		Display:   results[1].String(),
		Truthy:    results[2].Bool(),
		Namespace: results[3].String(),
	}, nil
}
