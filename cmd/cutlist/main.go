package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/mpaky95/cabinetry/internal/cutlist"
	"github.com/mpaky95/cabinetry/internal/domain"
	"github.com/mpaky95/cabinetry/internal/reader"
	"github.com/mpaky95/cabinetry/pkg/utils"
)

func main() {
	var (
		modelPath   = flag.String("model", "", "Path to the cabinet model YAML file")
		projectPath = flag.String("project", "", "Path to the project variables YAML file")
		kerf        = flag.Float64("kerf", 0.125, "Saw kerf width added to each part dimension")
		waste       = flag.Float64("waste", 15, "Waste percentage applied to the sheet estimate")
		sheetW      = flag.Float64("sheet-width", 48, "Sheet width for the purchase estimate")
		sheetH      = flag.Float64("sheet-height", 96, "Sheet height for the purchase estimate")
		sheetPrice  = flag.Float64("sheet-price", 0, "Price per sheet (0 disables cost output)")
	)
	flag.Parse()

	if *modelPath == "" || *projectPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	model, err := loadModel(*modelPath)
	if err != nil {
		log.Fatalf("Failed to load model: %v", err)
	}

	project, err := loadProject(*projectPath)
	if err != nil {
		log.Fatalf("Failed to load project: %v", err)
	}

	list, err := cutlist.Generate(*model, *project)
	if err != nil {
		log.Fatalf("Failed to generate cutlist: %v", err)
	}

	printCutlist(list)

	material := domain.Material{
		Name:          "sheet stock",
		Thickness:     project.Variables["T"],
		SheetWidth:    *sheetW,
		SheetHeight:   *sheetH,
		PricePerSheet: *sheetPrice,
	}
	est := cutlist.Estimate(list, material, *kerf, *waste)
	printEstimate(est)
}

func loadModel(path string) (*domain.CabinetModel, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return reader.NewModelLoader(f).Load(true)
}

func loadProject(path string) (*domain.Project, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return reader.NewProjectLoader(f).Load(true)
}

func printCutlist(list cutlist.Cutlist) {
	fmt.Printf("Cutlist for %s (project %s)\n\n", list.ModelName, list.Project)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PART\tQTY\tWIDTH\tHEIGHT\tDEPTH\tBANDING")
	for _, row := range list.Rows {
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\t%s\n",
			row.PartName,
			row.Quantity,
			formatAxis(row.Dimensions.Width),
			formatAxis(row.Dimensions.Height),
			formatAxis(row.Dimensions.Depth),
			formatBanding(row.EdgeBanding),
		)
	}
	w.Flush()
}

func printEstimate(est cutlist.PurchaseEstimate) {
	fmt.Printf("\nTotal part area: %.1f (kerf %.3f)\n", est.TotalPartArea, est.KerfWidth)
	if est.SheetArea > 0 {
		fmt.Printf("Sheets needed: %d (+%.0f%% waste: %d)\n",
			est.SheetsNeededMin, est.WastePercent, est.SheetsWithWaste)
		if est.EstimatedCost > 0 {
			fmt.Printf("Estimated cost: %.2f\n", est.EstimatedCost)
		}
	}
}

func formatAxis(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%g", utils.RoundDecimal(*v, 3))
}

func formatBanding(edges []domain.Edge) string {
	if len(edges) == 0 {
		return "-"
	}
	names := make([]string, len(edges))
	for i, e := range edges {
		names[i] = string(e)
	}
	return strings.Join(names, ",")
}
