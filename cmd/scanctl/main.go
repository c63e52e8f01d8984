// scanctl drives the warehouse scanner flow from a terminal: it takes the
// raw text a scanner device produced, reconciles it locally, looks the
// product up in the catalog and optionally files a stock request. With
// -watch it instead treats stdin as a scanner feed, one payload per line,
// until EOF or Ctrl-C.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/NasmeenI/Inventory-pro/internal/model"
	"github.com/NasmeenI/Inventory-pro/internal/scan"
	"github.com/NasmeenI/Inventory-pro/pkg/apiclient"
)

func main() {
	payload := flag.String("payload", "", "raw scanned payload text")
	watch := flag.Bool("watch", false, "read payloads from stdin, one per line")
	email := flag.String("email", "", "login email")
	password := flag.String("password", "", "login password")
	txType := flag.String("type", "", "file a request after the scan: stockIn or stockOut")
	amount := flag.Int("amount", 0, "item amount for the request")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, relying on system env")
	}

	baseURL := os.Getenv("API_URL")
	if baseURL == "" {
		baseURL = "http://localhost:3000/api/v1"
	}
	client := apiclient.New(baseURL)

	if *email != "" {
		if _, err := client.Login(*email, *password); err != nil {
			log.Fatalf("Login failed: %v", err)
		}
	}

	if *watch {
		watchStdin(client)
		return
	}

	if *payload == "" {
		flag.Usage()
		os.Exit(2)
	}

	// Local reconciliation first: a bad code never hits the network.
	reconciler := scan.NewReconciler(nil)
	sp, err := reconciler.Reconcile(*payload)
	if err != nil {
		log.Fatalf("Scan rejected: %v", err)
	}
	fmt.Printf("Scanned: %s (SKU %s)\n", sp.Name, sp.SKU)

	product, err := client.Product(sp.ID)
	if err != nil {
		log.Fatalf("Product lookup failed: %v", err)
	}
	fmt.Printf("Catalog: %s | stock %d %s | price %s\n",
		product.Name, product.Stock, product.Unit, product.Price.String())

	if *txType == "" {
		return
	}

	req := &model.TransactionRequest{
		ProductID:       product.ID,
		Type:            model.TransactionType(*txType),
		ItemAmount:      *amount,
		TransactionDate: time.Now(),
	}
	created, err := client.CreateRequest(req)
	if err != nil {
		log.Fatalf("Request rejected: %v", err)
	}
	fmt.Printf("Filed %s request %s for %d units (status %s)\n",
		created.Type, created.ID, created.ItemAmount, created.Status)
}

// watchStdin runs a scan session over stdin. EOF and Ctrl-C both stop the
// session; whichever lands first wins and the other is a no-op.
func watchStdin(client *apiclient.Client) {
	reconciler := scan.NewReconciler(func(sp scan.ScannedProduct) {
		fmt.Printf("Scanned: %s (SKU %s)\n", sp.Name, sp.SKU)
	})

	session := scan.NewSession(func() {
		history := reconciler.History()
		fmt.Printf("Session ended: %d scan(s) in history\n", len(history))
	})

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigs
		session.Stop()
		os.Exit(0)
	}()

	scanner := bufio.NewScanner(os.Stdin)
	for session.Active() && scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		sp, err := reconciler.Reconcile(line)
		if err != nil {
			log.Printf("Scan rejected: %v", err)
			continue
		}
		if product, err := client.Product(sp.ID); err == nil {
			fmt.Printf("Catalog: %s | stock %d %s\n", product.Name, product.Stock, product.Unit)
		}
	}
	session.Stop()
}
