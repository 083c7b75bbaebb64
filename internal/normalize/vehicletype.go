package normalize

// vehicleTypes is the portal's vocabulary for the vehicle type field.
var vehicleTypes = map[string]string{
	"Strab":              "tram",
	"Bus":                "bus",
	"Schienenschleifzug": "railgrinder",
}

// TranslateVehicleType maps the portal vocabulary to stable tag values.
// Unknown types pass through unchanged.
func TranslateVehicleType(t string) string {
	if v, ok := vehicleTypes[t]; ok {
		return v
	}
	return t
}
