package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Read-only map containing all environment variables, snapshot at startup.
var strEnvMap = make(map[string]string)

// Caches of settings already parsed into their target type.
var (
	boolEnvMap  = make(map[string]bool)
	intEnvMap   = make(map[string]int)
	uintEnvMap  = make(map[string]uint)
	int64EnvMap = make(map[string]int64)
	timeEnvMap  = make(map[string]time.Duration)
)

// Mutex protecting one-time map store operation
var envMapMutex sync.RWMutex

func init() {
	for _, entry := range os.Environ() {
		pair := strings.SplitN(entry, "=", 2)
		if len(pair) == 2 {
			strEnvMap[pair[0]] = pair[1]
		}
	}
}

// GetString returns a setting in string.
func GetString(key string, defaultValue ...string) string {
	envMapMutex.RLock()
	defer envMapMutex.RUnlock()

	val, exists := strEnvMap[key]
	if !exists {
		if len(defaultValue) == 0 {
			panic(fmt.Errorf("setting %s does not exist", key))
		}
		val = defaultValue[0]
	}

	return val
}

// getParsed returns the setting under key parsed by parse, caching the
// result in cache. Missing settings fall back to def, or panic when no
// default is given. what names the target type in parse failures.
func getParsed[T any](cache map[string]T, parse func(string) (T, error),
	what, key string, def []T) T {
	envMapMutex.RLock()
	if val, exists := cache[key]; exists {
		envMapMutex.RUnlock()
		return val
	}
	strVal, strExists := strEnvMap[key]
	envMapMutex.RUnlock()

	if !strExists {
		if len(def) == 0 {
			panic(fmt.Errorf("setting %s does not exist", key))
		}
		return def[0]
	}

	result, err := parse(strVal)
	if err != nil {
		panic(fmt.Errorf("failed to parse %s for setting %s, err=%w", what, key, err))
	}
	envMapMutex.Lock()
	cache[key] = result
	envMapMutex.Unlock()
	return result
}

// GetBool returns a setting in bool.
func GetBool(key string, def ...bool) bool {
	return getParsed(boolEnvMap, strconv.ParseBool, "bool", key, def)
}

// GetInt returns a setting in integer.
func GetInt(key string, def ...int) int {
	return getParsed(intEnvMap, func(s string) (int, error) {
		v, err := strconv.ParseInt(s, 0, 32)
		return int(v), err
	}, "int", key, def)
}

// GetUint returns a setting in unsigned integer.
func GetUint(key string, def ...uint) uint {
	return getParsed(uintEnvMap, func(s string) (uint, error) {
		v, err := strconv.ParseUint(s, 0, 32)
		return uint(v), err
	}, "uint", key, def)
}

// GetInt64 returns a setting in integer.
func GetInt64(key string, def ...int64) int64 {
	return getParsed(int64EnvMap, func(s string) (int64, error) {
		return strconv.ParseInt(s, 0, 64)
	}, "int64", key, def)
}

// GetMillisecond returns a setting in time.Duration.
func GetMillisecond(key string, def ...time.Duration) time.Duration {
	return getParsed(timeEnvMap, func(s string) (time.Duration, error) {
		v, err := strconv.ParseUint(s, 0, 32)
		return time.Duration(v) * time.Millisecond, err
	}, "time", key, def)
}

// SetString sets string to strEnvMap.
func SetString(key string, value string) {
	envMapMutex.Lock()
	strEnvMap[key] = value
	envMapMutex.Unlock()
}
