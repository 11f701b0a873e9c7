package clients

// Client es el dueño de una o más mascotas. El ID lo asigna el store al
// insertar; un Client recién construido viaja con ID 0.
type Client struct {
	ID    int64
	Name  string
	Email string
	Phone string
}
