package domain

// Shop services
const (
	ServiceClassicCut  = "Corte Clássico"
	ServiceBeardDesign = "Design de Barba"
	ServiceCutAndBeard = "Corte + Barba Completo"
)

var serviceDurations = map[string]int{
	ServiceClassicCut:  50,
	ServiceBeardDesign: 40,
	ServiceCutAndBeard: 90,
}

// ServiceDuration returns the appointment length in minutes for a service.
// Lookup is by exact name; unknown services get DefaultServiceDurationMinutes.
func ServiceDuration(service string) int {
	if minutes, ok := serviceDurations[service]; ok {
		return minutes
	}
	return DefaultServiceDurationMinutes
}
