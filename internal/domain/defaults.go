package domain

// DefaultWords is the starter catalog every new user is linked to.
// Seeded with is_custom = FALSE at initialization.
var DefaultWords = []WordPair{
	{English: "Peace", Russian: "Мир"},
	{English: "Green", Russian: "Зеленый"},
	{English: "White", Russian: "Белый"},
	{English: "Hello", Russian: "Привет"},
	{English: "Car", Russian: "Машина"},
	{English: "We", Russian: "Мы"},
	{English: "She", Russian: "Она"},
	{English: "It", Russian: "Оно"},
	{English: "Red", Russian: "Красный"},
	{English: "Blue", Russian: "Синий"},
}
