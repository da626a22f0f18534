// Command ardoise is the terminal front end of the point-of-sale: it stands
// in for the web screens and drives the same data layer they would.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"ardoise/internal/api"
	"ardoise/internal/auth"
	"ardoise/internal/catalog"
	"ardoise/internal/commons"
	"ardoise/internal/config"
	"ardoise/internal/dashboard"
	"ardoise/internal/domain"
	"ardoise/internal/httpclient"
	"ardoise/internal/infrastructure/logger"
	"ardoise/internal/orders"
	"ardoise/internal/query"
	"ardoise/internal/viewmodel"
)

type app struct {
	client    *httpclient.Client
	tokens    auth.TokenStore
	orders    *orders.Service
	catalog   *catalog.Service
	dashboard *dashboard.Service
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.NewConsole(cfg.Log.Level)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	tokens, err := auth.NewFileStore(cfg.Auth.TokenFile)
	if err != nil {
		log.Fatalf("opening token store: %v", err)
	}

	client := httpclient.New(cfg.API, tokens, zapLogger)
	cache := query.NewCache(cfg.Cache.TTL, cfg.Offline, zapLogger)

	a := &app{
		client:    client,
		tokens:    tokens,
		orders:    orders.NewModule(client, cache, zapLogger),
		catalog:   catalog.NewModule(client, cache, zapLogger),
		dashboard: dashboard.NewModule(client, cache, zapLogger),
	}

	ctx := context.Background()
	if err := a.run(ctx, os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintln(os.Stderr, "erreur:", err)
		os.Exit(1)
	}
}

func (a *app) run(ctx context.Context, command string, args []string) error {
	switch command {
	case "login":
		return a.login(ctx, args)
	case "logout":
		return a.logout(ctx)
	case "me":
		return a.me(ctx)
	case "orders":
		return a.listOrders(ctx, args)
	case "order":
		return a.showOrder(ctx, args)
	case "order-create":
		return a.createOrder(ctx, args)
	case "order-status":
		return a.updateStatus(ctx, args)
	case "order-delete":
		return a.deleteOrder(ctx, args)
	case "products":
		return a.listProducts(ctx)
	case "categories":
		return a.listCategories(ctx)
	case "users":
		return a.listUsers(ctx)
	case "dashboard":
		return a.showDashboard(ctx)
	default:
		usage()
		return fmt.Errorf("unknown command %q", command)
	}
}

func (a *app) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "user email")
	password := fs.String("password", "", "user password")
	fs.Parse(args)

	req := api.LoginRequest{Email: *email, Password: *password}
	if err := req.Validate(); err != nil {
		return err
	}

	resp, err := a.client.Login(ctx, req)
	if err != nil {
		return err
	}
	if err := a.tokens.SetToken(resp.Token); err != nil {
		return err
	}

	fmt.Printf("Connecté : %s (%s)\n", resp.User.Name, viewmodel.RoleLabel(resp.User.Role))
	return nil
}

func (a *app) logout(ctx context.Context) error {
	if err := a.client.Logout(ctx); err != nil {
		return err
	}
	if err := a.tokens.ClearToken(); err != nil {
		return err
	}
	fmt.Println("Déconnecté.")
	return nil
}

func (a *app) me(ctx context.Context) error {
	user, err := a.dashboard.Me(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("%s <%s> — %s\n", user.Name, user.Email, viewmodel.RoleLabel(user.Role))
	return nil
}

func (a *app) listOrders(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("orders", flag.ExitOnError)
	status := fs.String("status", "", "filter by status")
	search := fs.String("search", "", "search order number, table or customer")
	table := fs.String("table", "", "filter by table number")
	page := fs.Int("page", 1, "page number")
	fs.Parse(args)

	filters := domain.OrderFilters{
		Status:      domain.Status(*status),
		Search:      *search,
		TableNumber: *table,
		Page:        *page,
	}

	result, err := a.orders.List(ctx, filters)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "N°\tTABLE\tCLIENT\tSTATUT\tTOTAL")
	for _, o := range result.Data {
		customer := "—"
		if o.CustomerName != nil {
			customer = *o.CustomerName
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			o.OrderNumber, o.TableNumber, customer,
			viewmodel.StatusLabel(o.Status),
			viewmodel.FormatCurrency(o.TotalPrice),
		)
	}
	w.Flush()
	fmt.Printf("page %d/%d — %d commande(s)\n", result.CurrentPage, result.LastPage, result.Total)
	return nil
}

func (a *app) showOrder(ctx context.Context, args []string) error {
	id, err := argID(args)
	if err != nil {
		return err
	}

	order, err := a.orders.Get(ctx, id)
	if err != nil {
		return err
	}

	fmt.Printf("Commande %s — table %s — %s\n",
		order.OrderNumber, order.TableNumber, viewmodel.StatusLabel(order.Status))
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, item := range order.Items {
		name := fmt.Sprintf("produit #%d", item.ProductID)
		if item.Product != nil {
			name = item.Product.Name
		}
		fmt.Fprintf(w, "  %d × %s\t%s\n", item.Quantity, name, viewmodel.FormatCurrency(item.TotalPrice))
	}
	w.Flush()
	fmt.Printf("Total : %s\n", viewmodel.FormatCurrency(order.TotalPrice))
	return nil
}

type itemList []string

func (l *itemList) String() string     { return strings.Join(*l, ",") }
func (l *itemList) Set(v string) error { *l = append(*l, v); return nil }

func (a *app) createOrder(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("order-create", flag.ExitOnError)
	table := fs.String("table", "", "table number")
	customer := fs.String("customer", "", "customer name (optional)")
	var items itemList
	fs.Var(&items, "item", "order line as productID:quantity:unitPrice, repeatable")
	fs.Parse(args)

	inputs := make([]api.OrderItemInput, 0, len(items))
	for _, raw := range items {
		parts := strings.Split(raw, ":")
		if len(parts) != 3 {
			return fmt.Errorf("invalid -item %q: expected productID:quantity:unitPrice", raw)
		}
		productID, err := strconv.ParseUint(parts[0], 10, 32)
		if err != nil {
			return fmt.Errorf("invalid product id in %q", raw)
		}
		quantity, err := strconv.Atoi(parts[1])
		if err != nil {
			return fmt.Errorf("invalid quantity in %q", raw)
		}
		unitPrice, err := strconv.ParseInt(parts[2], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid unit price in %q", raw)
		}
		inputs = append(inputs, api.OrderItemInput{
			ProductID: uint(productID),
			Quantity:  quantity,
			UnitPrice: unitPrice,
		})
	}

	var customerName *string
	if *customer != "" {
		customerName = customer
	}

	order, err := a.orders.Create(ctx, api.NewCreateOrderRequest(*table, customerName, inputs))
	if err != nil {
		return err
	}

	fmt.Printf("Commande %s créée — total %s\n",
		order.OrderNumber, viewmodel.FormatCurrency(order.TotalPrice))
	return nil
}

func (a *app) updateStatus(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: ardoise order-status <id> <status>")
	}
	id, err := argID(args[:1])
	if err != nil {
		return err
	}

	order, err := a.orders.UpdateStatus(ctx, id, domain.Status(args[1]))
	if err != nil {
		return err
	}
	fmt.Printf("Commande %s : %s\n", order.OrderNumber, viewmodel.StatusLabel(order.Status))
	return nil
}

func (a *app) deleteOrder(ctx context.Context, args []string) error {
	id, err := argID(args)
	if err != nil {
		return err
	}
	if err := a.orders.Delete(ctx, id); err != nil {
		return err
	}
	fmt.Println("Commande supprimée.")
	return nil
}

func (a *app) listProducts(ctx context.Context) error {
	page, err := a.catalog.ListProducts(ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNOM\tPRIX\tDISPONIBLE")
	for _, p := range page.Data {
		available := "oui"
		if !p.Available {
			available = "non"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", p.ID, p.Name, viewmodel.FormatCurrency(p.Price), available)
	}
	return w.Flush()
}

func (a *app) listCategories(ctx context.Context) error {
	page, err := a.catalog.ListCategories(ctx)
	if err != nil {
		return err
	}
	for _, c := range page.Data {
		fmt.Printf("%d. %s\n", c.ID, c.Name)
	}
	return nil
}

func (a *app) listUsers(ctx context.Context) error {
	page, err := a.dashboard.ListUsers(ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNOM\tEMAIL\tRÔLE")
	for _, u := range page.Data {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", u.ID, u.Name, u.Email, viewmodel.RoleLabel(u.Role))
	}
	return w.Flush()
}

func (a *app) showDashboard(ctx context.Context) error {
	stats, err := a.dashboard.Stats(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Commandes : %d (aujourd'hui : %d)\n", stats.TotalOrders, stats.TodayOrders)
	fmt.Printf("Chiffre d'affaires : %s (aujourd'hui : %s)\n",
		viewmodel.FormatCurrency(stats.TotalRevenue),
		viewmodel.FormatCurrency(stats.TodayRevenue))
	for _, s := range domain.Statuses() {
		if count := stats.StatusCounts[s]; count > 0 {
			fmt.Printf("  %s : %d\n", viewmodel.StatusLabel(s), count)
		}
	}
	fmt.Printf("Évolution : commandes %+.1f%%, revenus %+.1f%%\n",
		stats.OrdersGrowth, stats.RevenueGrowth)
	return nil
}

func argID(args []string) (uint, error) {
	if len(args) < 1 {
		return 0, fmt.Errorf("missing order id")
	}
	id, err := strconv.ParseUint(args[0], 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid id %q", args[0])
	}
	return uint(id), nil
}

func loadConfig() (*config.Config, error) {
	if path := os.Getenv("ARDOISE_CONFIG"); path != "" {
		return commons.LoadConfig(path)
	}
	return config.Load()
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: ardoise <command> [flags]

commands:
  login -email <email> -password <pass>   authenticate and store the token
  logout                                  invalidate the session
  me                                      show the current user
  orders [-status s] [-search q] [-table t] [-page n]
  order <id>                              show one order with its lines
  order-create -table <t> [-customer c] -item pid:qty:price ...
  order-status <id> <status>              transition an order
  order-delete <id>                       remove an order
  products | categories | users           browse the catalog and staff
  dashboard                               aggregate statistics`)
}
