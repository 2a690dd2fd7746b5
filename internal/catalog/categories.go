package catalog

// ===============================
// Taxonomia estática
// ===============================

// Category é uma categoria de negócio com os tipos de serviço que oferece.
type Category struct {
	Slug     string   `json:"slug"`
	Name     string   `json:"name"`
	Services []string `json:"services"`
}

var categories = []Category{
	{Slug: "barberia", Name: "Barbería", Services: []string{"Corte", "Barba", "Corte y barba", "Color"}},
	{Slug: "peluqueria", Name: "Peluquería", Services: []string{"Corte", "Peinado", "Color", "Alisado"}},
	{Slug: "estetica", Name: "Estética", Services: []string{"Manicura", "Pedicura", "Depilación", "Limpieza facial"}},
	{Slug: "spa", Name: "Spa y masajes", Services: []string{"Masaje descontracturante", "Masaje relajante", "Piedras calientes"}},
	{Slug: "consultorio", Name: "Consultorio", Services: []string{"Consulta", "Control", "Estudio"}},
	{Slug: "gimnasio", Name: "Gimnasio", Services: []string{"Clase grupal", "Entrenamiento personal", "Evaluación"}},
	{Slug: "otros", Name: "Otros", Services: []string{"Turno general"}},
}

func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

func FindCategory(slug string) (Category, bool) {
	for _, c := range categories {
		if c.Slug == slug {
			return c, true
		}
	}
	return Category{}, false
}

func IsValidCategory(slug string) bool {
	_, ok := FindCategory(slug)
	return ok
}
