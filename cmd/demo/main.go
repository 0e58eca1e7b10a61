package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"strconv"

	"github.com/martinvlcek/shoplist-backend/api/routes"
	"github.com/martinvlcek/shoplist-backend/internal/client"
	"github.com/martinvlcek/shoplist-backend/internal/detail"
	"github.com/martinvlcek/shoplist-backend/internal/overview"
	"github.com/martinvlcek/shoplist-backend/internal/shoplist"
	"github.com/martinvlcek/shoplist-backend/pkg/config"
	"github.com/martinvlcek/shoplist-backend/pkg/logger"
)

// The demo boots an in-process API server against the seeded memory store and
// drives both screen sessions through a typical day: browse, create, edit a
// list's members and items, then clean up.
func main() {
	logg := logger.New(logger.Options{ServiceName: "demo"})

	cfg := &config.Config{}
	cfg.App.Env = config.AppEnvDev
	cfg.Latency.Enabled = false

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		logg.Error(context.Background(), "failed to bind demo listener", err)
		os.Exit(1)
	}

	server := &http.Server{Handler: routes.NewRouter(routes.Params{
		Config: cfg,
		Logger: logg,
		Store:  shoplist.NewMemoryStore(),
	})}
	go func() { _ = server.Serve(listener) }()
	defer server.Close()

	baseURL := "http://" + listener.Addr().String()
	api := client.NewShoppingLists(client.NewTransport(baseURL))
	ctx := context.Background()

	fmt.Println("== Overview ==")
	ov := overview.NewSession(api)
	must(ov.Load(ctx))
	for _, list := range ov.Filtered() {
		fmt.Printf("  [%d] %-16s owner=%s archived=%v\n", list.ID, list.Name, ov.OwnerName(list), list.Archived)
	}

	fmt.Println("== Petr creates a list ==")
	ov.SetCurrentUser(2)
	ov.SetDraftName("Chata s přáteli")
	must(ov.Create(ctx))
	created := ov.Lists()[len(ov.Lists())-1]
	fmt.Printf("  created [%d] %s\n", created.ID, created.Name)

	fmt.Println("== Petr archives it and changes his mind ==")
	must(ov.ToggleArchive(ctx, created.ID))
	must(ov.ToggleArchive(ctx, created.ID))

	fmt.Println("== Detail of the new list ==")
	dt := detail.NewSession(api)
	must(dt.Load(ctx, strconv.Itoa(created.ID)))
	dt.SetCurrentUser(2)

	dt.SetMemberDraft("Alena")
	must(dt.AddMember(ctx))
	dt.SetItemDraft("Dřevo na oheň")
	must(dt.AddItem(ctx))
	dt.SetItemDraft("Marshmallows")
	must(dt.AddItem(ctx))
	must(dt.ToggleItemDone(ctx, 1))
	fmt.Printf("  %s: %d/%d items open, %d members\n",
		dt.List().Name, dt.OpenItems(), dt.TotalItems(), len(dt.List().Members))

	fmt.Println("== A visitor cannot touch anything ==")
	dt.SetCurrentUser(shoplist.AnonymousUserID)
	dt.SetItemDraft("Nic")
	must(dt.AddItem(ctx))
	fmt.Printf("  still %d items\n", dt.TotalItems())

	fmt.Println("== Petr deletes the list ==")
	ov.SetCurrentUser(2)
	must(ov.Delete(ctx, created.ID, true))
	fmt.Printf("  %d lists remain\n", len(ov.Lists()))

	fmt.Println("== Missing list is notFound, not an error ==")
	must(dt.Load(ctx, strconv.Itoa(created.ID)))
	fmt.Printf("  status: %s\n", dt.Status())
}

func must(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, "demo step failed:", err)
		os.Exit(1)
	}
}
