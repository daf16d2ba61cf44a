/*
Copyright © 2025 booklyhq
*/
package cmd

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/booklyhq/support-be/config"
	"github.com/booklyhq/support-be/database"
	"github.com/booklyhq/support-be/types"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// seedCmd represents the seed command
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample orders and knowledge articles",
	Long:  `Clears the orders and knowledge collections, inserts generated sample data and ensures indexes.`,
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")
		count, _ := cmd.Flags().GetInt("orders")

		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		ctx := context.Background()
		mongoClient, err := database.NewMongoClient(cfg.MongoURI)
		if err != nil {
			log.Fatalf("Failed to create MongoDB client: %v", err)
		}
		if err := mongoClient.Ping(ctx, nil); err != nil {
			log.Fatalf("Failed to connect to MongoDB: %v", err)
		}
		db := mongoClient.Database(cfg.MongoDatabase)

		ordersCol := db.Collection(database.OrdersCollection)
		knowledgeCol := db.Collection(database.KnowledgeCollection)

		log.Println("Clearing existing data...")
		if _, err := ordersCol.DeleteMany(ctx, bson.D{}); err != nil {
			log.Fatalf("Failed to clear orders: %v", err)
		}
		if _, err := knowledgeCol.DeleteMany(ctx, bson.D{}); err != nil {
			log.Fatalf("Failed to clear knowledge: %v", err)
		}

		log.Printf("Creating %d orders...\n", count)
		orders := generateOrders(count)
		docs := make([]interface{}, 0, len(orders))
		for _, order := range orders {
			docs = append(docs, order)
		}
		if _, err := ordersCol.InsertMany(ctx, docs); err != nil {
			log.Fatalf("Failed to insert orders: %v", err)
		}

		log.Printf("Creating %d knowledge articles...\n", len(knowledgeSeed))
		articles := make([]interface{}, 0, len(knowledgeSeed))
		for _, article := range knowledgeSeed {
			article.CreatedAt = time.Now()
			article.UpdatedAt = time.Now()
			articles = append(articles, article)
		}
		if _, err := knowledgeCol.InsertMany(ctx, articles); err != nil {
			log.Fatalf("Failed to insert knowledge articles: %v", err)
		}

		if err := database.EnsureIndexes(ctx, db); err != nil {
			log.Fatalf("Failed to create indexes: %v", err)
		}

		log.Println("Seeding completed:")
		log.Printf("- %d orders\n", len(orders))
		log.Printf("- %d knowledge articles\n", len(knowledgeSeed))
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
	seedCmd.Flags().StringP("config", "c", "config/config.yaml", "config file")
	seedCmd.Flags().Int("orders", 100, "number of sample orders to generate")
}

var bookTitles = []string{
	"The Great Gatsby",
	"To Kill a Mockingbird",
	"1984",
	"Pride and Prejudice",
	"The Catcher in the Rye",
	"Harry Potter and the Sorcerer's Stone",
	"The Lord of the Rings",
	"Animal Farm",
	"Brave New World",
	"The Hobbit",
	"Fahrenheit 451",
	"Jane Eyre",
	"Wuthering Heights",
	"The Odyssey",
	"Moby Dick",
}

var sampleCities = []string{
	"Springfield, IL 62701",
	"Portland, OR 97201",
	"Austin, TX 78701",
	"Madison, WI 53703",
	"Denver, CO 80202",
	"Raleigh, NC 27601",
}

func generateOrders(count int) []*types.Order {
	statuses := []string{
		types.OrderStatusPending,
		types.OrderStatusProcessing,
		types.OrderStatusShipped,
		types.OrderStatusDelivered,
		types.OrderStatusCancelled,
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	orders := make([]*types.Order, 0, count)
	for i := 0; i < count; i++ {
		status := statuses[rng.Intn(len(statuses))]
		orderDate := time.Now().AddDate(0, 0, -rng.Intn(365))

		itemCount := 1 + rng.Intn(4)
		items := make([]string, 0, itemCount)
		for j := 0; j < itemCount; j++ {
			items = append(items, bookTitles[rng.Intn(len(bookTitles))])
		}

		order := &types.Order{
			OrderID:         fmt.Sprintf("ORD-%d", 10000+rng.Intn(90000)),
			CustomerEmail:   fmt.Sprintf("customer%d@example.com", rng.Intn(40)),
			Status:          status,
			Items:           items,
			ShippingAddress: fmt.Sprintf("%d Main St, %s", 100+rng.Intn(900), sampleCities[rng.Intn(len(sampleCities))]),
			OrderDate:       orderDate,
			TotalAmount:     15.99 + rng.Float64()*184,
			CreatedAt:       time.Now(),
			UpdatedAt:       time.Now(),
		}
		if status == types.OrderStatusShipped || status == types.OrderStatusDelivered {
			order.TrackingNumber = fmt.Sprintf("TRK%010d", rng.Intn(1_000_000_000))
		}
		if status != types.OrderStatusCancelled {
			delivery := orderDate.AddDate(0, 0, 3+rng.Intn(14))
			order.EstimatedDelivery = &delivery
		}
		orders = append(orders, order)
	}
	return orders
}

var knowledgeSeed = []*types.KnowledgeArticle{
	{
		Category: types.CategoryShipping,
		Title:    "Standard Shipping Times",
		Content:  "Standard shipping typically takes 5-7 business days within the continental United States. Orders are processed within 1-2 business days. You'll receive a tracking number via email once your order ships.",
		Keywords: []string{"shipping", "delivery", "standard", "time", "days"},
		Priority: 8,
	},
	{
		Category: types.CategoryShipping,
		Title:    "Express Shipping Options",
		Content:  "Express shipping is available for 2-3 business day delivery. This option can be selected at checkout for an additional fee. Express orders placed before 2 PM EST ship the same day.",
		Keywords: []string{"express", "fast", "shipping", "quick", "2-day", "3-day"},
		Priority: 7,
	},
	{
		Category: types.CategoryShipping,
		Title:    "International Shipping",
		Content:  "We ship to over 50 countries worldwide. International shipping takes 10-21 business days depending on destination. Customs fees and import duties are the responsibility of the customer.",
		Keywords: []string{"international", "overseas", "worldwide", "global", "shipping"},
		Priority: 5,
	},
	{
		Category: types.CategoryReturns,
		Title:    "Return Policy Overview",
		Content:  "Items can be returned within 30 days of delivery if they are in original condition with all packaging intact. Books must be unread and unmarked. Return shipping is free for defective items, otherwise customers pay return shipping costs.",
		Keywords: []string{"return", "refund", "policy", "30 days", "money back"},
		Priority: 9,
	},
	{
		Category: types.CategoryReturns,
		Title:    "How to Initiate a Return",
		Content:  "To start a return: 1) Log into your account, 2) Go to Order History, 3) Select the order, 4) Click 'Request Return', 5) Print the return label, 6) Ship within 5 days. Refunds are processed within 5-7 business days of receiving the return.",
		Keywords: []string{"return", "how to", "process", "steps", "initiate"},
		Priority: 8,
	},
	{
		Category: types.CategoryReturns,
		Title:    "Damaged or Defective Items",
		Content:  "If you receive a damaged or defective item, please contact us within 48 hours of delivery with photos. We'll arrange a free return pickup and send a replacement or issue a full refund immediately.",
		Keywords: []string{"damaged", "defective", "broken", "quality", "problem"},
		Priority: 10,
	},
	{
		Category: types.CategoryAccount,
		Title:    "Password Reset Instructions",
		Content:  "To reset your password: 1) Visit bookly.com/reset-password, 2) Enter your email address, 3) Check your email for a reset link (check spam folder if not found), 4) Click the link and create a new password. Links expire after 24 hours.",
		Keywords: []string{"password", "reset", "forgot", "login", "access"},
		Priority: 9,
	},
	{
		Category: types.CategoryAccount,
		Title:    "Update Account Information",
		Content:  "You can update your email, shipping address, payment methods, and preferences by logging into your account and navigating to 'Account Settings'. Changes are saved automatically.",
		Keywords: []string{"account", "update", "change", "edit", "profile", "settings"},
		Priority: 6,
	},
	{
		Category: types.CategoryAccount,
		Title:    "Email Preferences and Notifications",
		Content:  "Manage your email preferences in Account Settings > Notifications. You can opt in/out of marketing emails, order updates, and promotional offers. Order confirmation and shipping notifications cannot be disabled.",
		Keywords: []string{"email", "notifications", "preferences", "unsubscribe", "marketing"},
		Priority: 5,
	},
	{
		Category: types.CategoryPayment,
		Title:    "Accepted Payment Methods",
		Content:  "We accept Visa, Mastercard, American Express, Discover, PayPal, Apple Pay, and Google Pay. All transactions are encrypted and secure. We do not store full credit card numbers.",
		Keywords: []string{"payment", "credit card", "paypal", "pay", "methods"},
		Priority: 7,
	},
	{
		Category: types.CategoryPayment,
		Title:    "Payment Declined Issues",
		Content:  "If your payment is declined: 1) Verify card details are correct, 2) Ensure sufficient funds, 3) Check with your bank about international transaction blocks, 4) Try a different payment method. Contact us if the issue persists.",
		Keywords: []string{"payment", "declined", "failed", "error", "card", "problem"},
		Priority: 8,
	},
	{
		Category: types.CategoryPayment,
		Title:    "Refund Processing Time",
		Content:  "Refunds are issued to the original payment method within 5-7 business days after we receive your return. Credit card refunds may take an additional 3-5 business days to appear on your statement depending on your bank.",
		Keywords: []string{"refund", "money", "time", "how long", "processing"},
		Priority: 7,
	},
	{
		Category: types.CategoryProducts,
		Title:    "Book Condition Definitions",
		Content:  "New: Brand new, unread. Like New: Minimal shelf wear, appears unread. Very Good: Minor wear, clean pages. Good: Obvious wear but fully readable. Acceptable: Heavy wear but complete and readable.",
		Keywords: []string{"condition", "quality", "new", "used", "book"},
		Priority: 6,
	},
	{
		Category: types.CategoryProducts,
		Title:    "Out of Stock Items",
		Content:  "If an item is out of stock, you can sign up for restock notifications on the product page. We'll email you when it's available again. Most items are restocked within 2-4 weeks.",
		Keywords: []string{"out of stock", "unavailable", "restock", "notify", "availability"},
		Priority: 7,
	},
	{
		Category: types.CategoryGeneral,
		Title:    "Customer Service Hours",
		Content:  "Our customer service team is available Monday-Friday, 9 AM - 6 PM EST. Email support is available 24/7 and we respond within 24 hours. For urgent issues, call 1-800-BOOKLY during business hours.",
		Keywords: []string{"contact", "support", "hours", "phone", "email", "help"},
		Priority: 8,
	},
	{
		Category: types.CategoryGeneral,
		Title:    "Order Tracking Information",
		Content:  "Track your order using the tracking number in your shipping confirmation email. Visit our Track Order page or click the tracking link in the email. Tracking updates may take 24-48 hours after shipping to appear.",
		Keywords: []string{"track", "tracking", "status", "where", "order", "shipment"},
		Priority: 9,
	},
	{
		Category: types.CategoryGeneral,
		Title:    "Gift Orders and Gift Wrapping",
		Content:  "We offer gift wrapping for $4.99 per item. You can also include a gift message and hide prices on the packing slip. Select these options at checkout under 'Gift Options'.",
		Keywords: []string{"gift", "wrapping", "present", "message", "special"},
		Priority: 5,
	},
}
