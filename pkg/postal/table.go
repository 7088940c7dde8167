// Código generado por cmd/seed_postal a partir del listado de códigos
// postales de 472/DANE. No editar a mano; regenerar con:
//
//	go run ./cmd/seed_postal codigos_postales.csv
package postal

// rawTable mapa código postal → municipio y departamento.
var rawTable = map[string]Place{
	"050001": {City: "Medellín", Department: "Antioquia"},
	"050021": {City: "Medellín", Department: "Antioquia"},
	"051037": {City: "Envigado", Department: "Antioquia"},
	"051050": {City: "Itagüí", Department: "Antioquia"},
	"052050": {City: "Rionegro", Department: "Antioquia"},
	"080001": {City: "Barranquilla", Department: "Atlántico"},
	"080020": {City: "Barranquilla", Department: "Atlántico"},
	"081001": {City: "Soledad", Department: "Atlántico"},
	"110111": {City: "Bogotá D.C.", Department: "Bogotá D.C."},
	"110121": {City: "Bogotá D.C.", Department: "Bogotá D.C."},
	"110211": {City: "Bogotá D.C.", Department: "Bogotá D.C."},
	"110311": {City: "Bogotá D.C.", Department: "Bogotá D.C."},
	"110411": {City: "Bogotá D.C.", Department: "Bogotá D.C."},
	"110911": {City: "Bogotá D.C.", Department: "Bogotá D.C."},
	"111611": {City: "Bogotá D.C.", Department: "Bogotá D.C."},
	"130001": {City: "Cartagena de Indias", Department: "Bolívar"},
	"130010": {City: "Cartagena de Indias", Department: "Bolívar"},
	"150001": {City: "Tunja", Department: "Boyacá"},
	"170001": {City: "Manizales", Department: "Caldas"},
	"190001": {City: "Popayán", Department: "Cauca"},
	"200001": {City: "Valledupar", Department: "Cesar"},
	"230001": {City: "Montería", Department: "Córdoba"},
	"250001": {City: "Agua de Dios", Department: "Cundinamarca"},
	"250051": {City: "Chía", Department: "Cundinamarca"},
	"250251": {City: "Soacha", Department: "Cundinamarca"},
	"270001": {City: "Quibdó", Department: "Chocó"},
	"410001": {City: "Neiva", Department: "Huila"},
	"440001": {City: "Riohacha", Department: "La Guajira"},
	"470001": {City: "Santa Marta", Department: "Magdalena"},
	"500001": {City: "Villavicencio", Department: "Meta"},
	"520001": {City: "Pasto", Department: "Nariño"},
	"540001": {City: "Cúcuta", Department: "Norte de Santander"},
	"630001": {City: "Armenia", Department: "Quindío"},
	"660001": {City: "Pereira", Department: "Risaralda"},
	"680001": {City: "Bucaramanga", Department: "Santander"},
	"681001": {City: "Floridablanca", Department: "Santander"},
	"700001": {City: "Sincelejo", Department: "Sucre"},
	"730001": {City: "Ibagué", Department: "Tolima"},
	"760001": {City: "Cali", Department: "Valle del Cauca"},
	"760033": {City: "Cali", Department: "Valle del Cauca"},
	"763041": {City: "Palmira", Department: "Valle del Cauca"},
	"850001": {City: "Yopal", Department: "Casanare"},
}
