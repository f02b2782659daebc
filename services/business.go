package services

// BusinessInfo is the garage's identity block rendered on every page
// and document header.
type BusinessInfo struct {
	Name           string
	FullName       string
	Tagline        string
	Phone          string
	PhoneFormatted string
	Phone2         string
	Email          string
	Address        string
	TPIN           string
	BusinessHours  string
	Services       []string
}

// Ramstone is the business this site is built for.
var Ramstone = BusinessInfo{
	Name:           "RAMSTONE",
	FullName:       "RAMSTONE CREATIVE SOLUTIONS",
	Tagline:        "Great Professionalism. Superb Quality.",
	Phone:          "+260974622334",
	PhoneFormatted: "+260 974 622 334",
	Phone2:         "+260 964 729 007",
	Email:          "grayheavens891@gmail.com",
	Address:        "23A Great East Road, Avondale, Lusaka",
	TPIN:           "2001215113",
	BusinessHours:  "Mon-Fri: 8AM-5PM, Sat: 8AM-2PM",
	Services: []string{
		"Panel Beating, Spray Painting,",
		"Denting & Painting, Welding,",
		"Auto Electrical & Car Polishing,",
		"23A Great East Road, Avondale, Lusaka",
		"Cell: +260 974 622 334 / +260 964 729 007",
	},
}
