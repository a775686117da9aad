package request

import "pet-adoption/internal/usecase/commands"

// PetForm is shared by the add and edit pages. The image part is read from the
// multipart body directly. Edit only applies fields that were actually
// submitted, so form presence is checked by the caller.
type PetForm struct {
	Name        string `form:"name"`
	Type        string `form:"type"`
	Breed       string `form:"breed"`
	Age         string `form:"age"`
	Gender      string `form:"gender"`
	Description string `form:"description"`
	Price       string `form:"price"`
}

func (f *PetForm) ToAddInput(image *commands.ImageUpload) commands.AddPetInput {
	return commands.AddPetInput{
		Name:        f.Name,
		Species:     f.Type,
		Breed:       f.Breed,
		Age:         f.Age,
		Gender:      f.Gender,
		Description: f.Description,
		Price:       f.Price,
		Image:       image,
	}
}

// ToEditInput keeps a field nil unless present reports it was posted.
func (f *PetForm) ToEditInput(present func(field string) bool, image *commands.ImageUpload) commands.EditPetInput {
	pick := func(field, value string) *string {
		if !present(field) {
			return nil
		}
		return &value
	}
	return commands.EditPetInput{
		Name:        pick("name", f.Name),
		Species:     pick("type", f.Type),
		Breed:       pick("breed", f.Breed),
		Age:         pick("age", f.Age),
		Gender:      pick("gender", f.Gender),
		Description: pick("description", f.Description),
		Price:       pick("price", f.Price),
		Image:       image,
	}
}
