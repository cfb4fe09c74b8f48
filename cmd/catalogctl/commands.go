package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/pr-poehali-dev/real-estate-venture-1/internal"
	logger_adapter "github.com/pr-poehali-dev/real-estate-venture-1/internal/adapters/logger"
	"github.com/pr-poehali-dev/real-estate-venture-1/internal/adapters/web"
	"github.com/pr-poehali-dev/real-estate-venture-1/internal/contextkeys"
	"github.com/pr-poehali-dev/real-estate-venture-1/internal/core/domain"
	"github.com/pr-poehali-dev/real-estate-venture-1/internal/core/port"
	"github.com/spf13/cobra"
	"golang.org/x/text/currency"
)

type rootOptions struct {
	currency string
	logLevel string
}

type listOptions struct {
	search   string
	priceMin int64
	priceMax int64
	areaMin  float64
	areaMax  float64
	district string
	propType string
	linkBase string
}

// newRootCmd собирает дерево команд заново на каждый вызов, чтобы тесты не делили флаги
func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "catalogctl",
		Short:         "Просмотр каталога недвижимости",
		Long:          `Выводит объекты встроенного каталога, новостройки и опции фильтра.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.currency, "currency", "RUB", "ISO-код валюты для вывода цен")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "уровень логов в stderr")

	root.AddCommand(
		newListCmd(opts),
		newNewDevelopmentsCmd(opts),
		newShowCmd(opts),
		newOptionsCmd(opts),
		newDictionariesCmd(opts),
	)
	return root
}

func newListCmd(root *rootOptions) *cobra.Command {
	lo := &listOptions{}
	def := domain.DefaultFilterCriteria()

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Объекты каталога с фильтрами",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, root, lo)
		},
	}

	f := cmd.Flags()
	f.StringVar(&lo.search, "q", "", "поиск по названию")
	f.Int64Var(&lo.priceMin, "price-min", def.Price.Min, "минимальная цена")
	f.Int64Var(&lo.priceMax, "price-max", def.Price.Max, "максимальная цена")
	f.Float64Var(&lo.areaMin, "area-min", def.Area.Min, "минимальная площадь, м²")
	f.Float64Var(&lo.areaMax, "area-max", def.Area.Max, "максимальная площадь, м²")
	f.StringVar(&lo.district, "district", domain.AllOption, "район")
	f.StringVar(&lo.propType, "type", domain.AllOption, "тип недвижимости")
	f.StringVar(&lo.linkBase, "link-base", "", "адрес сайта; если задан, печатается ссылка на тот же фильтр")
	return cmd
}

func runList(cmd *cobra.Command, root *rootOptions, lo *listOptions) error {
	ctx, catalog, err := setup(cmd, root)
	if err != nil {
		return err
	}

	filters := domain.FilterCriteria{
		SearchText:   lo.search,
		Price:        domain.PriceRange{Min: lo.priceMin, Max: lo.priceMax},
		Area:         domain.AreaRange{Min: lo.areaMin, Max: lo.areaMax},
		District:     lo.district,
		PropertyType: lo.propType,
	}

	result, err := catalog.FindObjects.Execute(ctx, filters, 0, 0)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Найдено объектов: %d\n", result.TotalCount)
	if result.TotalCount == 0 {
		fmt.Fprintln(out, "Ничего не найдено")
	} else {
		if err := printListings(out, result.Objects, catalog.PriceFormatter); err != nil {
			return err
		}
	}

	if lo.linkBase != "" {
		fmt.Fprintf(out, "Ссылка: %s%s\n", strings.TrimRight(lo.linkBase, "/"), web.FilterURL(filters))
	}
	return nil
}

func newNewDevelopmentsCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "new",
		Short: "Новостройки",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, catalog, err := setup(cmd, root)
			if err != nil {
				return err
			}
			listings, err := catalog.NewDevelopments.Execute(ctx)
			if err != nil {
				return err
			}
			return printListings(cmd.OutOrStdout(), listings, catalog.PriceFormatter)
		},
	}
}

func newShowCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Карточка объекта",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid object id %q: %w", args[0], err)
			}
			ctx, catalog, err := setup(cmd, root)
			if err != nil {
				return err
			}
			p, err := catalog.ObjectDetails.Execute(ctx, id)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "ID:\t%d\n", p.ID)
			fmt.Fprintf(w, "Название:\t%s\n", p.Title)
			fmt.Fprintf(w, "Тип:\t%s\n", p.Type)
			fmt.Fprintf(w, "Район:\t%s\n", p.District)
			fmt.Fprintf(w, "Площадь:\t%g м²\n", p.Area)
			fmt.Fprintf(w, "Комнат:\t%d\n", p.Rooms)
			fmt.Fprintf(w, "Цена:\t%s\n", catalog.PriceFormatter.Format(p.Price))
			fmt.Fprintf(w, "Новостройка:\t%s\n", yesNo(p.IsNew))
			fmt.Fprintf(w, "Фото:\t%s\n", p.Image)
			return w.Flush()
		},
	}
}

func newOptionsCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "options",
		Short: "Опции формы фильтра",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, catalog, err := setup(cmd, root)
			if err != nil {
				return err
			}
			result, err := catalog.FilterOptions.Execute(ctx)
			if err != nil {
				return err
			}

			opts := result.Options
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Цена: %s - %s, шаг %s\n",
				catalog.PriceFormatter.Format(opts.Price.Min),
				catalog.PriceFormatter.Format(opts.Price.Max),
				catalog.PriceFormatter.Format(opts.Price.Step))
			fmt.Fprintf(out, "Площадь: %g - %g м², шаг %g\n", opts.Area.Min, opts.Area.Max, opts.Area.Step)
			fmt.Fprintf(out, "Районы: %s\n", joinDisplayNames(opts.Districts))
			fmt.Fprintf(out, "Типы: %s\n", joinDisplayNames(opts.PropertyTypes))
			fmt.Fprintf(out, "Всего объектов: %d\n", result.Count)
			return nil
		},
	}
}

func newDictionariesCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "dictionaries [name...]",
		Short: "Справочники: districts, property_types, sections",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, catalog, err := setup(cmd, root)
			if err != nil {
				return err
			}
			dictionaries, err := catalog.Dictionaries.Execute(ctx, args)
			if err != nil {
				return err
			}

			names := make([]string, 0, len(dictionaries))
			for name := range dictionaries {
				names = append(names, name)
			}
			sort.Strings(names)

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, name := range names {
				fmt.Fprintf(w, "%s:\n", name)
				for _, item := range dictionaries[name] {
					fmt.Fprintf(w, "  %s\t%s\n", item.SystemName, item.DisplayName)
				}
			}
			return w.Flush()
		},
	}
}

// setup загружает каталог и кладет в контекст логгер, пишущий в stderr команды
func setup(cmd *cobra.Command, root *rootOptions) (context.Context, *internal.Catalog, error) {
	unit, err := currency.ParseISO(root.currency)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid currency %q: %w", root.currency, err)
	}

	logger := logger_adapter.NewSlogAdapter(logger_adapter.SlogConfig{
		Writer:   cmd.ErrOrStderr(),
		Level:    parseCLILevel(root.logLevel),
		UseColor: true,
	})

	catalog, err := internal.NewCatalog(unit)
	if err != nil {
		return nil, nil, err
	}

	ctx := contextkeys.ContextWithLogger(cmd.Context(), logger.WithFields(port.Fields{"component": "catalogctl"}))
	return ctx, catalog, nil
}

func parseCLILevel(level string) slog.Level {
	if level == "" {
		return slog.LevelWarn
	}
	return logger_adapter.ParseLevel(level)
}

func printListings(out io.Writer, listings []domain.PropertyListing, formatter port.PriceFormatterPort) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tНАЗВАНИЕ\tТИП\tРАЙОН\tПЛОЩАДЬ\tКОМН\tЦЕНА\tНОВОЕ")
	for _, p := range listings {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%g м²\t%d\t%s\t%s\n",
			p.ID, p.Title, p.Type, p.District, p.Area, p.Rooms, formatter.Format(p.Price), yesNo(p.IsNew))
	}
	return w.Flush()
}

func joinDisplayNames(items []domain.DictionaryItem) string {
	names := make([]string, len(items))
	for i, item := range items {
		names[i] = item.DisplayName
	}
	return strings.Join(names, ", ")
}

func yesNo(v bool) string {
	if v {
		return "да"
	}
	return "нет"
}
