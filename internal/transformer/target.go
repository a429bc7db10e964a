package transformer

import (
	"fmt"
	"strings"
)

// Target is the ECMAScript edition the output must run on.
type Target uint16

const (
	ES5    Target = 5
	ES2015 Target = 2015
	ES2016 Target = 2016
	ES2017 Target = 2017
	ES2018 Target = 2018
	ES2019 Target = 2019
	ES2020 Target = 2020
	ES2021 Target = 2021
	ES2022 Target = 2022
	ES2023 Target = 2023
	ES2024 Target = 2024
	ESNext Target = 9999
)

// ParseTarget resolves a named target. Unknown names are an error the driver
// reports as a diagnostic before falling back to defaults.
func ParseTarget(name string) (Target, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "es5":
		return ES5, nil
	case "es6", "es2015":
		return ES2015, nil
	case "es2016":
		return ES2016, nil
	case "es2017":
		return ES2017, nil
	case "es2018":
		return ES2018, nil
	case "es2019":
		return ES2019, nil
	case "es2020":
		return ES2020, nil
	case "es2021":
		return ES2021, nil
	case "es2022":
		return ES2022, nil
	case "es2023":
		return ES2023, nil
	case "es2024":
		return ES2024, nil
	case "esnext":
		return ESNext, nil
	}
	return 0, fmt.Errorf("invalid target %q", name)
}

// Options are the concrete transform options resolved from a target name.
type Options struct {
	Target Target
}

// DefaultOptions transforms for the newest target: TypeScript erasure only.
func DefaultOptions() Options {
	return Options{Target: ESNext}
}

// FromTarget resolves a named target into transform options.
func FromTarget(name string) (Options, error) {
	target, err := ParseTarget(name)
	if err != nil {
		return Options{}, err
	}
	return Options{Target: target}, nil
}
