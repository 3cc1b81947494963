// Package config loads accessory configuration from YAML.
//
// Loading starts from defaults, applies the file, then environment
// overrides, then validates:
//
//	HAP_ACCESSORY_SETUP_CODE  accessory.setup_code
//	HAP_ACCESSORY_ID          accessory.id
//	HAP_LOGGING_LEVEL         logging.level
//	HAP_EVENT_LOG_PATH        event_log.path
package config
