package external

// PlacesResponse is the zippopotam.us answer for GET /us/{state}/{city}
type PlacesResponse struct {
	Country             string  `json:"country"`
	CountryAbbreviation string  `json:"country abbreviation"`
	PlaceName           string  `json:"place name"`
	State               string  `json:"state"`
	StateAbbreviation   string  `json:"state abbreviation"`
	Places              []Place `json:"places"`
}

// Place is one postal code of the looked up city
type Place struct {
	PlaceName string `json:"place name"`
	PostCode  string `json:"post code"`
	Longitude string `json:"longitude"`
	Latitude  string `json:"latitude"`
}

// PostCodes returns the post codes in response order.
func (r *PlacesResponse) PostCodes() []string {
	codes := make([]string, 0, len(r.Places))
	for _, place := range r.Places {
		codes = append(codes, place.PostCode)
	}
	return codes
}
