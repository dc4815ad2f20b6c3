// Copyright 2025 The pvsim Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

// Panel technology names. The selection layer and the engine share this
// closed enumeration; any other name is a programming error.
const (
	Monocrystalline = "Monocrystalline"
	Polycrystalline = "Polycrystalline"
	Amorphous       = "Amorphous"
	Heterojunction  = "Heterojunction"
	Bifacial        = "Bifacial"
)

// Weather condition names
const (
	Sunny  = "Sunny"
	Cloudy = "Cloudy"
	Rainy  = "Rainy"
)

// technologies lists the supported panel technologies in display order.
// Reference yields are annual kWh measured at the 8 kWc reference
// installation under clear skies.
var technologies = []PanelTechnology{
	{Name: Monocrystalline, NominalEfficiency: 20.0, PricePerWatt: 1.20, ReferenceYield: 14592},
	{Name: Polycrystalline, NominalEfficiency: 17.5, PricePerWatt: 1.00, ReferenceYield: 13850},
	{Name: Amorphous, NominalEfficiency: 10.0, PricePerWatt: 0.80, ReferenceYield: 12050},
	{Name: Heterojunction, NominalEfficiency: 21.5, PricePerWatt: 1.50, ReferenceYield: 14950},
	{Name: Bifacial, NominalEfficiency: 19.5, PricePerWatt: 1.40, ReferenceYield: 15280},
}

// weatherConditions lists the supported weather scenarios in display order
var weatherConditions = []WeatherCondition{
	{Name: Sunny, IrradiationFactor: 1.0},
	{Name: Cloudy, IrradiationFactor: 0.75},
	{Name: Rainy, IrradiationFactor: 0.55},
}

// LookupTechnology finds a panel technology by name
func LookupTechnology(name string) (PanelTechnology, error) {
	for _, tech := range technologies {
		if tech.Name == name {
			return tech, nil
		}
	}
	return PanelTechnology{}, &UnknownTechnologyError{
		Name:  name,
		Known: TechnologyNames(),
	}
}

// LookupWeather finds a weather condition by name
func LookupWeather(name string) (WeatherCondition, error) {
	for _, weather := range weatherConditions {
		if weather.Name == name {
			return weather, nil
		}
	}
	return WeatherCondition{}, &UnknownWeatherError{
		Name:  name,
		Known: WeatherNames(),
	}
}

// TechnologyNames returns the technology names in display order
func TechnologyNames() []string {
	names := make([]string, 0, len(technologies))
	for _, tech := range technologies {
		names = append(names, tech.Name)
	}
	return names
}

// WeatherNames returns the weather condition names in display order
func WeatherNames() []string {
	names := make([]string, 0, len(weatherConditions))
	for _, weather := range weatherConditions {
		names = append(names, weather.Name)
	}
	return names
}
