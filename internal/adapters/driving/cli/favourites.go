package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pakuni-pk/pakuni-cli/internal/core/domain"
)

var favouritesType string

var favouritesCmd = &cobra.Command{
	Use:     "favourites",
	Aliases: []string{"favorites", "favs"},
	Short:   "Manage favourite directory entries",
	RunE:    runFavouritesList,
}

var favouritesAddCmd = &cobra.Command{
	Use:   "add [id]",
	Short: "Favourite a directory entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runFavouritesAdd,
}

var favouritesRemoveCmd = &cobra.Command{
	Use:   "remove [id]",
	Short: "Remove a favourite",
	Args:  cobra.ExactArgs(1),
	RunE:  runFavouritesRemove,
}

func init() {
	favouritesCmd.PersistentFlags().StringVarP(&favouritesType, "type", "t", "university",
		"record type (university|scholarship)")
	favouritesCmd.AddCommand(favouritesAddCmd)
	favouritesCmd.AddCommand(favouritesRemoveCmd)
	rootCmd.AddCommand(favouritesCmd)
}

func favouriteRecordType() (domain.RecordType, error) {
	recordType := domain.RecordType(favouritesType)
	if !recordType.IsValid() {
		return "", fmt.Errorf("unknown record type %q, expected university or scholarship", favouritesType)
	}
	return recordType, nil
}

func runFavouritesList(cmd *cobra.Command, _ []string) error {
	if favouritesService == nil {
		return errors.New("favourites service not configured")
	}

	ctx := cmd.Context()

	universities, err := favouritesService.ListUniversities(ctx)
	if err != nil {
		return fmt.Errorf("listing favourites: %w", err)
	}
	scholarships, err := favouritesService.ListScholarships(ctx)
	if err != nil {
		return fmt.Errorf("listing favourites: %w", err)
	}

	if len(universities) == 0 && len(scholarships) == 0 {
		cmd.Println("No favourites yet. Add one with: pakuni favourites add <id>")
		return nil
	}

	outputUniversityTable(cmd, universities)
	outputScholarshipTable(cmd, scholarships)
	return nil
}

func runFavouritesAdd(cmd *cobra.Command, args []string) error {
	if favouritesService == nil {
		return errors.New("favourites service not configured")
	}

	recordType, err := favouriteRecordType()
	if err != nil {
		return err
	}

	err = favouritesService.Add(cmd.Context(), args[0], recordType)
	if errors.Is(err, domain.ErrAlreadyExists) {
		cmd.Printf("%s is already a favourite.\n", args[0])
		return nil
	}
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("no %s with ID %q", recordType, args[0])
	}
	if err != nil {
		return fmt.Errorf("adding favourite: %w", err)
	}

	cmd.Printf("Added %s to favourites.\n", args[0])
	return nil
}

func runFavouritesRemove(cmd *cobra.Command, args []string) error {
	if favouritesService == nil {
		return errors.New("favourites service not configured")
	}

	recordType, err := favouriteRecordType()
	if err != nil {
		return err
	}

	err = favouritesService.Remove(cmd.Context(), args[0], recordType)
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("%s is not a favourite", args[0])
	}
	if err != nil {
		return fmt.Errorf("removing favourite: %w", err)
	}

	cmd.Printf("Removed %s from favourites.\n", args[0])
	return nil
}
