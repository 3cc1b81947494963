package host

import (
	"fmt"
	"strings"
)

// CharacteristicType is the HAP short type ID of a characteristic.
type CharacteristicType uint16

// Characteristic types.
const (
	CharacteristicBrightness                 CharacteristicType = 0x08
	CharacteristicCoolingThreshold           CharacteristicType = 0x0D
	CharacteristicCurrentDoorState           CharacteristicType = 0x0E
	CharacteristicCurrentHeatingCoolingState CharacteristicType = 0x0F
	CharacteristicCurrentRelativeHumidity    CharacteristicType = 0x10
	CharacteristicCurrentTemperature         CharacteristicType = 0x11
	CharacteristicHeatingThreshold           CharacteristicType = 0x12
	CharacteristicHue                        CharacteristicType = 0x13
	CharacteristicIdentify                   CharacteristicType = 0x14
	CharacteristicLockCurrentState           CharacteristicType = 0x1D
	CharacteristicLockTargetState            CharacteristicType = 0x1E
	CharacteristicManufacturer               CharacteristicType = 0x20
	CharacteristicModel                      CharacteristicType = 0x21
	CharacteristicMotionDetected             CharacteristicType = 0x22
	CharacteristicName                       CharacteristicType = 0x23
	CharacteristicObstructionDetected        CharacteristicType = 0x24
	CharacteristicOn                         CharacteristicType = 0x25
	CharacteristicOutletInUse                CharacteristicType = 0x26
	CharacteristicRotationDirection          CharacteristicType = 0x28
	CharacteristicRotationSpeed              CharacteristicType = 0x29
	CharacteristicSaturation                 CharacteristicType = 0x2F
	CharacteristicSerialNumber               CharacteristicType = 0x30
	CharacteristicTargetDoorState            CharacteristicType = 0x32
	CharacteristicTargetHeatingCoolingState  CharacteristicType = 0x33
	CharacteristicTargetRelativeHumidity     CharacteristicType = 0x34
	CharacteristicTargetTemperature          CharacteristicType = 0x35
	CharacteristicTemperatureDisplayUnits    CharacteristicType = 0x36
	CharacteristicFirmwareRevision           CharacteristicType = 0x52
	CharacteristicHardwareRevision           CharacteristicType = 0x53
	CharacteristicBatteryLevel               CharacteristicType = 0x68
	CharacteristicContactSensorState         CharacteristicType = 0x6A
	CharacteristicProgrammableSwitchEvent    CharacteristicType = 0x73
	CharacteristicStatusLowBattery           CharacteristicType = 0x79
	CharacteristicActive                     CharacteristicType = 0xB0
	CharacteristicColorTemperature           CharacteristicType = 0xCE
)

var characteristicNames = map[CharacteristicType]string{
	CharacteristicBrightness:                 "Brightness",
	CharacteristicCoolingThreshold:           "CoolingThresholdTemperature",
	CharacteristicCurrentDoorState:           "CurrentDoorState",
	CharacteristicCurrentHeatingCoolingState: "CurrentHeatingCoolingState",
	CharacteristicCurrentRelativeHumidity:    "CurrentRelativeHumidity",
	CharacteristicCurrentTemperature:         "CurrentTemperature",
	CharacteristicHeatingThreshold:           "HeatingThresholdTemperature",
	CharacteristicHue:                        "Hue",
	CharacteristicIdentify:                   "Identify",
	CharacteristicLockCurrentState:           "LockCurrentState",
	CharacteristicLockTargetState:            "LockTargetState",
	CharacteristicManufacturer:               "Manufacturer",
	CharacteristicModel:                      "Model",
	CharacteristicMotionDetected:             "MotionDetected",
	CharacteristicName:                       "Name",
	CharacteristicObstructionDetected:        "ObstructionDetected",
	CharacteristicOn:                         "On",
	CharacteristicOutletInUse:                "OutletInUse",
	CharacteristicRotationDirection:          "RotationDirection",
	CharacteristicRotationSpeed:              "RotationSpeed",
	CharacteristicSaturation:                 "Saturation",
	CharacteristicSerialNumber:               "SerialNumber",
	CharacteristicTargetDoorState:            "TargetDoorState",
	CharacteristicTargetHeatingCoolingState:  "TargetHeatingCoolingState",
	CharacteristicTargetRelativeHumidity:     "TargetRelativeHumidity",
	CharacteristicTargetTemperature:          "TargetTemperature",
	CharacteristicTemperatureDisplayUnits:    "TemperatureDisplayUnits",
	CharacteristicFirmwareRevision:           "FirmwareRevision",
	CharacteristicHardwareRevision:           "HardwareRevision",
	CharacteristicBatteryLevel:               "BatteryLevel",
	CharacteristicContactSensorState:         "ContactSensorState",
	CharacteristicProgrammableSwitchEvent:    "ProgrammableSwitchEvent",
	CharacteristicStatusLowBattery:           "StatusLowBattery",
	CharacteristicActive:                     "Active",
	CharacteristicColorTemperature:           "ColorTemperature",
}

// String returns the characteristic type name, or its hex ID if unknown.
func (c CharacteristicType) String() string {
	if name, ok := characteristicNames[c]; ok {
		return name
	}
	return fmt.Sprintf("0x%02X", uint16(c))
}

// ServiceType is the HAP short type ID of a service.
type ServiceType uint16

// Service types.
const (
	ServiceAccessoryInformation        ServiceType = 0x3E
	ServiceFan                         ServiceType = 0x40
	ServiceGarageDoorOpener            ServiceType = 0x41
	ServiceLightbulb                   ServiceType = 0x43
	ServiceLockMechanism               ServiceType = 0x45
	ServiceOutlet                      ServiceType = 0x47
	ServiceSwitch                      ServiceType = 0x49
	ServiceThermostat                  ServiceType = 0x4A
	ServiceContactSensor               ServiceType = 0x80
	ServiceHumiditySensor              ServiceType = 0x82
	ServiceMotionSensor                ServiceType = 0x85
	ServiceStatelessProgrammableSwitch ServiceType = 0x89
	ServiceTemperatureSensor           ServiceType = 0x8A
	ServiceBattery                     ServiceType = 0x96
	ServiceProtocolInformation         ServiceType = 0xA2
)

var serviceNames = map[ServiceType]string{
	ServiceAccessoryInformation:        "AccessoryInformation",
	ServiceFan:                         "Fan",
	ServiceGarageDoorOpener:            "GarageDoorOpener",
	ServiceLightbulb:                   "Lightbulb",
	ServiceLockMechanism:               "LockMechanism",
	ServiceOutlet:                      "Outlet",
	ServiceSwitch:                      "Switch",
	ServiceThermostat:                  "Thermostat",
	ServiceContactSensor:               "ContactSensor",
	ServiceHumiditySensor:              "HumiditySensor",
	ServiceMotionSensor:                "MotionSensor",
	ServiceStatelessProgrammableSwitch: "StatelessProgrammableSwitch",
	ServiceTemperatureSensor:           "TemperatureSensor",
	ServiceBattery:                     "Battery",
	ServiceProtocolInformation:         "ProtocolInformation",
}

// String returns the service type name, or its hex ID if unknown.
func (s ServiceType) String() string {
	if name, ok := serviceNames[s]; ok {
		return name
	}
	return fmt.Sprintf("0x%02X", uint16(s))
}

// Category is the accessory category advertised by the host.
type Category uint8

// Accessory categories.
const (
	CategoryOther              Category = 1
	CategoryBridge             Category = 2
	CategoryFan                Category = 3
	CategoryGarageDoorOpener   Category = 4
	CategoryLightbulb          Category = 5
	CategoryDoorLock           Category = 6
	CategoryOutlet             Category = 7
	CategorySwitch             Category = 8
	CategoryThermostat         Category = 9
	CategorySensor             Category = 10
	CategorySecuritySystem     Category = 11
	CategoryDoor               Category = 12
	CategoryWindow             Category = 13
	CategoryWindowCovering     Category = 14
	CategoryProgrammableSwitch Category = 15
	CategoryAirPurifier        Category = 19
	CategoryHeater             Category = 20
	CategoryAirConditioner     Category = 21
	CategoryHumidifier         Category = 22
	CategoryDehumidifier       Category = 23
	CategorySprinkler          Category = 28
	CategoryFaucet             Category = 29
)

var categoryNames = map[Category]string{
	CategoryOther:              "other",
	CategoryBridge:             "bridge",
	CategoryFan:                "fan",
	CategoryGarageDoorOpener:   "garage-door-opener",
	CategoryLightbulb:          "lightbulb",
	CategoryDoorLock:           "door-lock",
	CategoryOutlet:             "outlet",
	CategorySwitch:             "switch",
	CategoryThermostat:         "thermostat",
	CategorySensor:             "sensor",
	CategorySecuritySystem:     "security-system",
	CategoryDoor:               "door",
	CategoryWindow:             "window",
	CategoryWindowCovering:     "window-covering",
	CategoryProgrammableSwitch: "programmable-switch",
	CategoryAirPurifier:        "air-purifier",
	CategoryHeater:             "heater",
	CategoryAirConditioner:     "air-conditioner",
	CategoryHumidifier:         "humidifier",
	CategoryDehumidifier:       "dehumidifier",
	CategorySprinkler:          "sprinkler",
	CategoryFaucet:             "faucet",
}

// String returns the category name.
func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "unknown"
}

// ParseCategory parses a category name as returned by Category.String.
// Matching is case-insensitive and accepts underscores for dashes.
func ParseCategory(s string) (Category, error) {
	want := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
	for c, name := range categoryNames {
		if name == want {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown accessory category %q", s)
}
