package config

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/urfave/cli/v3"
)

type parseOptions struct {
	Parent                  *parseOptions
	EnvPrefix               string
	EnvIsDisabled           bool
	FlagPrefix              string
	Category                string
	AlreadyHasDefaultValues bool
	RequiredByDefault       bool
}

// Для приложений с yaml конфигом + env
var CommonParseOptions = parseOptions{
	AlreadyHasDefaultValues: true,
	RequiredByDefault:       true,
}

// Для приложений только с env
var DefaultParseOptions = parseOptions{
	RequiredByDefault: true,
}

var (
	tagNameEnv        = "env"        // полностью меняет часть после префикса для env. env:"-" - убрать ввод значения через env.
	tagNameEnvPrefix  = "envprefix"  // полностью перезаписывает префикс env (envprefix:"APP2", envprefix:"")
	tagNameFlag       = "flag"       // полностью меняет часть после префикса для флага. flag:"-" - убрать ввод значения через флаг
	tagNameFlagPrefix = "flagprefix" // полностью перезаписывает префикс флага
	tagNameCLI        = "cli"        // опции через запятую: hidden,required,optional. cli:"-" - игнор поля.
	tagNameUsage      = "usage"      // описание (usage:"делает что-то")
	tagNameDefault    = "default"    // дефолт значение (default:"10")
	tagNameCategory   = "category"   // категория в команде help
)

// Для приложений без субкоманд.
// Если нужны субкоманды, используй urfave/cli напрямую или создай где-нибудь здесь абстракцию.
// opts:
//   - CommonParseOptions - Для приложений с yaml конфигом + env.
//   - DefaultParseOptions - Для приложений только с env.
//   - или сам собери структуру.
//
// Пример:
//
//	CommonHelp("clipper", "Запустить сервер", "", &cfg, CommonParseOptions)
func CommonHelp(name, usage, description string, cfg any, opts parseOptions) error {
	helpWasCalled, err := WorkHelp(name, usage, description, cfg, opts)
	if helpWasCalled && err == nil {
		os.Exit(0)
	}

	return err
}

func WorkHelp(name, usage, description string, cfg any, opts parseOptions) (bool, error) {
	flags, err := parseFlags(cfg, opts)
	if err != nil {
		return false, fmt.Errorf("ParseFlags: %w", err)
	}

	var helpWasCalled bool

	original := cli.HelpPrinterCustom
	cli.HelpPrinterCustom = func(w io.Writer, templ string, data any, customFunc map[string]any) {
		helpWasCalled = true

		original(w, templ, data, customFunc)
	}
	defer func() { cli.HelpPrinterCustom = original }()

	cmd := &cli.Command{
		Name:        name,
		Usage:       usage,
		Description: description,
		Flags:       flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			return nil
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		return helpWasCalled, fmt.Errorf("cmd.Run: %w", err)
	}

	return helpWasCalled, nil
}

func parseFlags(c any, opts parseOptions) ([]cli.Flag, error) {
	if c == nil {
		return nil, errors.New("config must not be nil")
	}

	v := reflect.ValueOf(c)

	if v.Kind() != reflect.Ptr {
		return nil, errors.New("config must be pointer")
	}

	v = v.Elem()

	if v.Kind() != reflect.Struct {
		return nil, errors.New("config must be struct")
	}

	t := reflect.TypeOf(c).Elem()

	flags := make([]cli.Flag, 0, v.NumField())

	for i := range v.NumField() {
		res, err := parseField(t.Field(i), v.Field(i), opts)
		if err != nil {
			return nil, err
		}

		flags = append(flags, res...)
	}

	return flags, nil
}

type flagOptions[T any] struct {
	Value T
	Dest  *T
	flagOptionsCommon
}

type flagOptionsCommon struct {
	Name       string
	Category   string
	HasValue   bool
	Env        string
	DisableEnv bool
	Usage      string
	Required   bool
	Hidden     bool
}

// nolint: gocyclo, cyclop
func parseField(
	t reflect.StructField,
	v reflect.Value,
	opts parseOptions,
) ([]cli.Flag, error) {
	var flagPrefix, envPrefix string

	if v, ok := t.Tag.Lookup(tagNameFlagPrefix); ok {
		opts.FlagPrefix = v
	}

	if v, ok := t.Tag.Lookup(tagNameEnvPrefix); ok {
		opts.EnvPrefix = v
	}

	if opts.FlagPrefix != "" {
		flagPrefix = opts.FlagPrefix + "-"
	}

	if opts.EnvPrefix != "" {
		envPrefix = opts.EnvPrefix + "_"
	}

	argName, ok := t.Tag.Lookup(tagNameFlag)
	switch {
	case !ok:
		argName = flagPrefix + toKebabCase(t.Name)
	case argName == "-":
		argName = ""
	default:
		argName = flagPrefix + argName
	}

	disableEnv := opts.EnvIsDisabled

	var envName string

	if !disableEnv {
		envName, ok = t.Tag.Lookup(tagNameEnv)
		if !ok {
			envName = envPrefix + toScreamingSnakeCase(t.Name)
		} else {
			if envName == "-" {
				disableEnv = true
			} else {
				envName = envPrefix + envName
			}
		}
	}

	category, ok := t.Tag.Lookup(tagNameCategory)
	switch {
	case ok && v.Kind() != reflect.Struct:
		return nil, fmt.Errorf("category tag is allowed only for structures")
	case !ok && v.Kind() == reflect.Struct:
		category = t.Name
	case !ok && v.Kind() != reflect.Struct:
		category = opts.Category
	}

	if !v.CanSet() {
		return nil, fmt.Errorf("private field: %s", t.Name)
	}

	var defaultValue string

	var hasDefaultValue bool
	if !opts.AlreadyHasDefaultValues {
		defaultValue, hasDefaultValue = t.Tag.Lookup(tagNameDefault)
	}

	usage, _ := t.Tag.Lookup(tagNameUsage)

	var (
		cliRequired bool
		cliOptional bool
		cliHidden   bool
	)

	cliOptionsStr, _ := t.Tag.Lookup(tagNameCLI)
	if cliOptionsStr == "-" {
		return nil, nil
	}

	if cliOptionsStr != "" {
		cliOptions := strings.Split(cliOptionsStr, ",")
		cliRequired = slices.Contains(cliOptions, "required")
		cliOptional = slices.Contains(cliOptions, "optional")
		cliHidden = slices.Contains(cliOptions, "hidden")
	}

	if !cliOptional {
		cliRequired = cliRequired || opts.RequiredByDefault
	}

	if cliHidden && cliRequired {
		return nil, fmt.Errorf("flag %v: must not be hidden and required at the same time, add \"optional\" to cli tag", t.Name)
	}

	configValueIsZero := cliRequired && v.IsZero() && v.Kind() != reflect.Bool && opts.AlreadyHasDefaultValues

	foc := flagOptionsCommon{
		Name:       argName,
		Category:   category,
		HasValue:   false,
		Env:        envName,
		DisableEnv: disableEnv,
		Usage:      usage,
		Required:   cliRequired,
		Hidden:     cliHidden,
	}

	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}

	b := binder{
		field:      t.Name,
		common:     foc,
		useConfig:  opts.AlreadyHasDefaultValues && !configValueIsZero,
		def:        defaultValue,
		hasDefault: hasDefaultValue,
	}

	// длительности проверяются по типу: по Kind они неотличимы от int64
	if v.Type() == durationType || v.Type() == configDurationType {
		return bind(v, b, time.ParseDuration, func(o flagOptions[time.Duration]) cli.Flag {
			return fill(&cli.DurationFlag{}, o)
		})
	}

	switch v.Kind() {
	case reflect.Slice:
		if sv := v.Type().Elem().Kind(); sv != reflect.String {
			return nil, fmt.Errorf("slice type %v is unsupported", sv)
		}

		return bind(v, b, splitList, func(o flagOptions[[]string]) cli.Flag {
			return fill(&cli.StringSliceFlag{}, o)
		})

	case reflect.Struct:
		envPrefixFromTag, hasEnvPrefixFromTag := t.Tag.Lookup(tagNameEnv)
		if hasEnvPrefixFromTag {
			envPrefix += envPrefixFromTag
		} else {
			envPrefix += toScreamingSnakeCase(t.Name)
		}

		flagPrefixFromTag, hasFlagPrefixFromTag := t.Tag.Lookup(tagNameFlag)
		if hasFlagPrefixFromTag {
			flagPrefix += flagPrefixFromTag
		} else {
			flagPrefix += toKebabCase(t.Name)
		}

		newOpts := parseOptions{
			Parent:                  &opts,
			Category:                category,
			EnvPrefix:               envPrefix,
			EnvIsDisabled:           opts.EnvIsDisabled || envPrefixFromTag == "-",
			FlagPrefix:              flagPrefix,
			RequiredByDefault:       cliRequired,
			AlreadyHasDefaultValues: opts.AlreadyHasDefaultValues,
		}

		return parseFlags(v.Addr().Interface(), newOpts)

	case reflect.String:
		return bind(v, b, func(s string) (string, error) { return s, nil }, func(o flagOptions[string]) cli.Flag {
			return fill(&cli.StringFlag{}, o)
		})

	case reflect.Bool:
		return bind(v, b, strconv.ParseBool, func(o flagOptions[bool]) cli.Flag {
			// у bool всегда есть значение - false
			o.Required = false

			return fill(&cli.BoolFlag{}, o)
		})

	case reflect.Int:
		return bind(v, b, strconv.Atoi, func(o flagOptions[int]) cli.Flag {
			return fill(&cli.IntFlag{}, o)
		})

	case reflect.Int64:
		return bind(v, b, parseInt[int64](64), func(o flagOptions[int64]) cli.Flag {
			return fill(&cli.Int64Flag{}, o)
		})

	case reflect.Uint:
		return bind(v, b, parseUint[uint](0), func(o flagOptions[uint]) cli.Flag {
			return fill(&cli.UintFlag{}, o)
		})

	case reflect.Uint16:
		return bind(v, b, parseUint[uint16](16), func(o flagOptions[uint16]) cli.Flag {
			return fill(&cli.Uint16Flag{}, o)
		})

	case reflect.Uint64:
		return bind(v, b, parseUint[uint64](64), func(o flagOptions[uint64]) cli.Flag {
			return fill(&cli.Uint64Flag{}, o)
		})

	case reflect.Float64:
		return bind(v, b, func(s string) (float64, error) { return strconv.ParseFloat(s, 64) }, func(o flagOptions[float64]) cli.Flag {
			return fill(&cli.FloatFlag{}, o)
		})

	default:
		return nil, fmt.Errorf("type %v is unsupported", v.Type())
	}
}

var (
	durationType       = reflect.TypeOf(time.Duration(0))
	configDurationType = reflect.TypeOf(Duration(0))
)

// binder - всё, что нужно знать о поле, чтобы собрать для него флаг
type binder struct {
	field      string
	common     flagOptionsCommon
	useConfig  bool
	def        string
	hasDefault bool
}

// bind приводит поле к T (работает и для "type T1 T2"), берёт значение из конфига
// или из тега default и собирает флаг.
func bind[T any](v reflect.Value, b binder, parse func(string) (T, error), build func(flagOptions[T]) cli.Flag) ([]cli.Flag, error) {
	var zero T

	dst, ok := v.Addr().Convert(reflect.TypeOf(&zero)).Interface().(*T)
	if !ok {
		return nil, fmt.Errorf("failed to cast *%T: %s", zero, b.field)
	}

	fo := flagOptions[T]{
		flagOptionsCommon: b.common,
		Dest:              dst,
	}

	switch {
	case b.useConfig:
		fo.HasValue = true
		fo.Value = *dst
	case b.hasDefault:
		value, err := parse(b.def)
		if err != nil {
			return nil, fmt.Errorf("invalid default value for %s: %w", b.field, err)
		}

		fo.HasValue = true
		fo.Value = value
	}

	if fo.HasValue {
		fo.Required = false
	}

	return []cli.Flag{build(fo)}, nil
}

// fill одинаково заполняет любой флаг urfave/cli
func fill[T any, C any, VC cli.ValueCreator[T, C]](flag *cli.FlagBase[T, C, VC], opts flagOptions[T]) cli.Flag {
	flag.Name = opts.Name
	flag.Category = opts.Category
	flag.Destination = opts.Dest
	flag.Usage = opts.Usage
	flag.Required = opts.Required
	flag.Hidden = opts.Hidden

	if opts.HasValue {
		flag.Value = opts.Value
	}

	if !opts.DisableEnv {
		flag.Sources = cli.EnvVars(opts.Env)
	}

	return flag
}

func parseInt[T ~int64](bitSize int) func(string) (T, error) {
	return func(s string) (T, error) {
		v, err := strconv.ParseInt(s, 10, bitSize)

		return T(v), err
	}
}

func parseUint[T ~uint | ~uint16 | ~uint64](bitSize int) func(string) (T, error) {
	return func(s string) (T, error) {
		v, err := strconv.ParseUint(s, 10, bitSize)

		return T(v), err
	}
}

func splitList(s string) ([]string, error) {
	return strings.Split(s, ","), nil
}

var (
	matchFirstCap = regexp.MustCompile("(.)([A-Z][a-z]+)")
	matchAllCap   = regexp.MustCompile("([a-z0-9])([A-Z])")
)

func toSnakeCase(str string) string {
	snake := matchFirstCap.ReplaceAllString(str, "${1}_${2}")
	snake = matchAllCap.ReplaceAllString(snake, "${1}_${2}")

	return strings.ToLower(snake)
}

func toKebabCase(str string) string {
	return strings.ReplaceAll(toSnakeCase(str), "_", "-")
}

func toScreamingSnakeCase(str string) string {
	return strings.ToUpper(toSnakeCase(str))
}
