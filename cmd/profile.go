package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kaptenjon/mathquest/internal/player"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or update the player profile",
	Long: `Without flags, prints the saved profile. With flags, updates it.
Saving a profile resets the adaptive difficulty and streak.`,
	RunE: runProfile,
}

func init() {
	profileCmd.Flags().String("name", "", "Player name")
	profileCmd.Flags().Int("grade", 0, "School grade, 0 (pre-school) to 5")
	profileCmd.Flags().String("avatar", "", "Avatar name, e.g. panda (must be unlocked)")
	profileCmd.Flags().String("language", "", "Saved language tag, e.g. sv; \"system\" clears it")
}

func runProfile(cmd *cobra.Command, args []string) error {
	rt, err := openRuntime(cmd)
	if err != nil {
		return err
	}
	defer rt.Close()

	flags := cmd.Flags()
	if !flags.Changed("name") && !flags.Changed("grade") && !flags.Changed("avatar") && !flags.Changed("language") {
		if !rt.hasProfile {
			return errNoProfile
		}
		printProfile(cmd, rt)
		return nil
	}

	p := rt.engine.Player()
	name, grade, avatar, lang := p.Name, p.Grade, p.Avatar, p.Language

	if flags.Changed("name") {
		name, _ = flags.GetString("name")
	}
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%s", rt.text.Text("Alert_NameRequired_Message"))
	}
	if flags.Changed("grade") {
		grade, _ = flags.GetInt("grade")
		if grade != player.ClampGrade(grade) {
			fmt.Fprintf(cmd.ErrOrStderr(), "grade %d is out of range, using %d\n", grade, player.ClampGrade(grade))
		}
	}
	if flags.Changed("avatar") {
		v, _ := flags.GetString("avatar")
		avatar = avatarID(v)
		if !p.IsUnlocked(avatar) && !isBaseAvatar(avatar) {
			return fmt.Errorf("avatar %q is not unlocked", v)
		}
	}
	if flags.Changed("language") {
		lang, _ = flags.GetString("language")
		if strings.EqualFold(lang, "system") {
			lang = ""
		}
	}

	rt.engine.SetPlayer(name, grade, avatar)
	p.Language = lang
	rt.text.SetLanguage(resolveLanguage(cmd, rt.cfg, lang))
	rt.writer.SavePlayer(p)
	rt.logger.Info("profile saved", "grade", p.Grade, "avatar", p.Avatar, "language", lang)

	fmt.Fprintln(cmd.OutOrStdout(), rt.text.Text("Alert_Saved_Message"))
	printProfile(cmd, rt)
	return nil
}

func printProfile(cmd *cobra.Command, rt *runtime) {
	p := rt.engine.Player()
	t := rt.text
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, t.Text("Main_WelcomeWithName", p.Name, p.Grade))
	fmt.Fprintln(out, t.Text("Label_Avatar", player.AvatarIcon(p.Avatar)+" "+player.AvatarName(p.Avatar)))
	fmt.Fprintln(out, t.Text("Main_Points", p.Points))
	if u, ok := player.NextUnlock(p.Points); ok {
		fmt.Fprintln(out, t.Text("Main_NextUnlock", u.Points))
	} else {
		fmt.Fprintln(out, t.Text("Main_AllUnlocked"))
	}

	names := make([]string, 0, len(p.Unlocked))
	for _, id := range p.Unlocked {
		names = append(names, player.AvatarName(id))
	}
	fmt.Fprintln(out, t.Text("Label_PickAvatar")+": "+strings.Join(names, ", "))
}

// avatarID accepts "panda" or "avatar_panda.png".
func avatarID(v string) string {
	v = strings.ToLower(strings.TrimSpace(v))
	if strings.HasPrefix(v, "avatar_") {
		return v
	}
	return "avatar_" + v + ".png"
}

func isBaseAvatar(id string) bool {
	for _, a := range player.BaseAvatars {
		if a == id {
			return true
		}
	}
	return false
}
