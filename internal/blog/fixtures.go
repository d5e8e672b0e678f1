package blog

import (
	"time"

	"github.com/fitflowhq/fitflow/internal/models"
)

// SamplePosts returns a fresh copy of the fixture post set used to seed the
// blog in the absence of a real backend. The fixture shape is the de facto
// schema contract for posts, authors, categories, and comments.
func SamplePosts() []models.Post {
	return []models.Post{
		{
			ID:      "1",
			Title:   "10-Minute Full Body HIIT Workout for Beginners",
			Slug:    "10-minute-full-body-hiit-workout-beginners",
			Excerpt: "Get fit with this quick and effective HIIT workout that targets all major muscle groups. Perfect for beginners looking to start their fitness journey.",
			Content: `# 10-Minute Full Body HIIT Workout for Beginners

Are you ready to kickstart your fitness journey with a quick and effective workout? This 10-minute full-body HIIT (High-Intensity Interval Training) routine is perfect for beginners who want to get fit without spending hours at the gym.

## Why HIIT Works

HIIT workouts are scientifically proven to:
- Burn more calories in less time
- Boost your metabolism for hours after exercise
- Improve cardiovascular health
- Build muscle while burning fat
- Require no equipment

## The Workout Structure

This workout consists of 5 exercises, each performed for 40 seconds with 20 seconds rest between exercises. We'll complete 2 rounds for a total of 10 minutes.

### Exercise 1: Jumping Jacks

Start with your feet together and arms at your sides. Jump your feet out to shoulder-width apart while raising your arms overhead. Jump back to starting position.

### Exercise 2: Bodyweight Squats

Stand with feet shoulder-width apart. Lower your body by bending your knees and pushing your hips back as if sitting in a chair. Keep your chest up and core engaged.

### Exercise 3: Push-ups (Modified if Needed)

Start in a plank position with hands slightly wider than shoulders. Lower your chest to the ground, then push back up. For beginners, perform on your knees.

### Exercise 4: Mountain Climbers

Start in a plank position. Bring one knee toward your chest, then quickly switch legs, creating a running motion.

### Exercise 5: Plank Hold

Hold a plank position on your forearms, keeping your body in a straight line from head to heels. Engage your core throughout.

## Cool Down and Recovery

After completing both rounds, take a few minutes to stretch your major muscle groups. This helps prevent soreness and improves flexibility.

## Tips for Success

1. **Start Slow**: If you're new to exercise, focus on form over speed.
2. **Listen to Your Body**: Take breaks when needed and modify exercises as necessary.
3. **Stay Consistent**: Aim to do this workout 3-4 times per week for best results.
4. **Hydrate**: Drink water before, during, and after your workout.
5. **Track Progress**: Take photos and measurements to monitor your improvements.

Remember, fitness is a journey, not a destination. Stay consistent, be patient with yourself, and celebrate small victories along the way!`,
			Thumbnail: "https://picsum.photos/2004",
			Category:  "Workouts",
			Tags:      []string{"HIIT", "Beginner", "Full Body", "No Equipment", "10 Minutes"},
			Author: models.Author{
				ID:     "1",
				Name:   "Sarah Johnson",
				Bio:    "Certified Personal Trainer and Nutrition Coach with 8 years of experience helping people achieve their fitness goals.",
				Avatar: "https://picsum.photos/1002",
				SocialLinks: &models.SocialLinks{
					YouTube:   "https://youtube.com/fitflow",
					Instagram: "https://instagram.com/fitflow_sarah",
					Twitter:   "https://twitter.com/fitflow_sarah",
				},
			},
			PublishedAt: time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
			ReadTime:    8,
			YouTubeURL:  "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			Likes:       245,
			Comments: []models.Comment{
				{
					ID:        "1",
					Author:    "Mike Chen",
					Content:   "Great workout! I've been doing this 3 times a week and seeing amazing results.",
					CreatedAt: time.Date(2024, 1, 16, 14, 30, 0, 0, time.UTC),
					Likes:     12,
				},
				{
					ID:        "2",
					Author:    "Lisa Martinez",
					Content:   "Perfect for beginners like me. The modifications really help!",
					CreatedAt: time.Date(2024, 1, 17, 9, 15, 0, 0, time.UTC),
					Likes:     8,
				},
			},
			IsFeatured: true,
		},
		{
			ID:      "2",
			Title:   "The Ultimate Guide to Meal Prep for Fitness Enthusiasts",
			Slug:    "ultimate-guide-meal-prep-fitness-enthusiasts",
			Excerpt: "Learn how to meal prep like a pro with our comprehensive guide. Save time, money, and stay on track with your fitness goals.",
			Content: `# The Ultimate Guide to Meal Prep for Fitness Enthusiasts

Meal prepping is a game-changer for anyone serious about their fitness journey. Not only does it save time and money, but it also ensures you always have healthy, nutritious meals ready to fuel your workouts and recovery.

## Benefits of Meal Prepping

### 1. Saves Time

Spend 2-3 hours on Sunday preparing meals for the entire week. No more daily cooking or last-minute unhealthy food choices.

### 2. Saves Money

Buying ingredients in bulk and cooking at home is significantly cheaper than eating out or buying pre-made meals.

### 3. Portion Control

Pre-portioned meals help you maintain proper serving sizes and track your macros more accurately.

### 4. Reduces Stress

Eliminate the daily "what should I eat?" dilemma and reduce decision fatigue.

## Essential Meal Prep Tools

- Quality food containers (glass or BPA-free plastic)
- Sharp knives and cutting boards
- Measuring cups and food scale
- Slow cooker or Instant Pot (optional but helpful)
- Baking sheets and mixing bowls
- Labels and markers for dating containers

## Step-by-Step Meal Prep Process

### Step 1: Plan Your Meals

Start by planning your meals for the week. Consider your workout schedule, daily calorie and macro targets, foods you enjoy eating, seasonal ingredients, and budget constraints.

### Step 2: Create a Shopping List

Based on your meal plan, create a comprehensive shopping list organized by store sections.

### Step 3: Shop Smart

Buy seasonal produce for better prices and flavor, purchase proteins in bulk, and choose versatile ingredients that work in multiple meals.

### Step 4: Prep Day

Wash and chop vegetables, marinate proteins, start grains cooking, then batch-cook everything in parallel: oven for roasting, stovetop for grains, and a slow cooker for proteins.

Remember, the best meal prep plan is the one you can stick to consistently. Find what works for your lifestyle, schedule, and preferences, and make it a sustainable part of your fitness journey.`,
			Thumbnail: "https://picsum.photos/2002",
			Category:  "Nutrition",
			Tags:      []string{"Meal Prep", "Nutrition", "Fitness", "Healthy Eating", "Time Saving"},
			Author: models.Author{
				ID:     "2",
				Name:   "David Rodriguez",
				Bio:    "Sports Nutritionist and Meal Prep Expert helping athletes optimize their nutrition for peak performance.",
				Avatar: "https://picsum.photos/1003",
				SocialLinks: &models.SocialLinks{
					YouTube:   "https://youtube.com/fitflow",
					Instagram: "https://instagram.com/fitflow_david",
					Twitter:   "https://twitter.com/fitflow_david",
				},
			},
			PublishedAt: time.Date(2024, 1, 12, 8, 30, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2024, 1, 12, 8, 30, 0, 0, time.UTC),
			ReadTime:    12,
			YouTubeURL:  "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			Likes:       189,
			Comments: []models.Comment{
				{
					ID:        "3",
					Author:    "Jennifer Kim",
					Content:   "This guide is incredibly detailed. Started meal prepping last month and it's been life-changing!",
					CreatedAt: time.Date(2024, 1, 13, 11, 45, 0, 0, time.UTC),
					Likes:     15,
				},
			},
			IsFeatured: true,
		},
		{
			ID:      "3",
			Title:   "5 Morning Habits That Will Transform Your Fitness Journey",
			Slug:    "5-morning-habits-transform-fitness-journey",
			Excerpt: "Start your day right with these powerful morning habits that will set you up for fitness success and improved overall well-being.",
			Content: `# 5 Morning Habits That Will Transform Your Fitness Journey

Your morning routine sets the tone for your entire day. By implementing these five powerful habits, you can transform not only your fitness journey but your overall quality of life.

## Habit 1: Wake Up Early (The 5 AM Advantage)

Waking up early gives you a head start on the day and provides uninterrupted time for self-care and fitness activities. Early mornings are quiet, free of distractions, and perfect for building momentum before the day's demands arrive.

## Habit 2: Hydrate Immediately

After 7-8 hours without water, your body is dehydrated. Drinking a large glass of water first thing kickstarts your metabolism, helps flush out toxins, and improves mental clarity for your morning training session.

## Habit 3: Move Your Body

Whether it's a full workout, a brisk walk, or ten minutes of stretching, morning movement raises your energy, sharpens focus, and makes it far more likely you hit your training targets for the week.

## Habit 4: Eat a Protein-Rich Breakfast

Protein in the morning stabilizes blood sugar, reduces cravings later in the day, and supports muscle recovery from the previous day's training.

## Habit 5: Set Daily Intentions

Take two minutes to write down the single most important thing you want to accomplish. People who set daily intentions are dramatically more consistent with their training.

## Putting It All Together

Start with one habit and layer in the next only after the first feels automatic. Small, consistent steps compound into remarkable changes over months.`,
			Thumbnail: "https://picsum.photos/2001",
			Category:  "Motivation",
			Tags:      []string{"Morning Routine", "Habits", "Productivity", "Fitness Tips", "Lifestyle"},
			Author: models.Author{
				ID:     "3",
				Name:   "Emma Thompson",
				Bio:    "Lifestyle Coach and Habit Formation Expert helping people create sustainable healthy routines.",
				Avatar: "https://picsum.photos/1004",
				SocialLinks: &models.SocialLinks{
					YouTube:   "https://youtube.com/fitflow",
					Instagram: "https://instagram.com/fitflow_emma",
					Twitter:   "https://twitter.com/fitflow_emma",
				},
			},
			PublishedAt: time.Date(2024, 1, 10, 6, 0, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2024, 1, 10, 6, 0, 0, 0, time.UTC),
			ReadTime:    10,
			YouTubeURL:  "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			Likes:       312,
			Comments: []models.Comment{
				{
					ID:        "4",
					Author:    "Alex Johnson",
					Content:   "These habits have completely changed my life! I wake up at 5 AM every day now.",
					CreatedAt: time.Date(2024, 1, 11, 8, 20, 0, 0, time.UTC),
					Likes:     22,
				},
				{
					ID:        "5",
					Author:    "Maria Garcia",
					Content:   "The water tip is so simple but so effective. I feel so much more energized!",
					CreatedAt: time.Date(2024, 1, 12, 7, 15, 0, 0, time.UTC),
					Likes:     18,
				},
			},
			IsFeatured: false,
		},
		{
			ID:      "4",
			Title:   "Best Home Gym Equipment Under $100",
			Slug:    "best-home-gym-equipment-under-100",
			Excerpt: "Build an effective home gym without breaking the bank. These affordable equipment pieces will help you achieve your fitness goals at home.",
			Content: `# Best Home Gym Equipment Under $100

Creating a home gym doesn't have to be expensive. With just $100, you can purchase versatile equipment that will help you build strength, improve cardiovascular health, and achieve your fitness goals without leaving your house.

## 1. Resistance Bands Set ($20-30)

**Why You Need Them:**
- Extremely versatile and portable
- Perfect for all fitness levels
- Great for strength training and rehabilitation

A quality set includes multiple resistance levels, door anchors, and handles, covering everything from assisted pull-ups to banded squats.

## 2. Adjustable Jump Rope ($10-15)

One of the cheapest and most effective cardio tools available. Ten minutes of jumping rope burns roughly as many calories as thirty minutes of jogging.

## 3. Kettlebell ($25-35)

A single moderate-weight kettlebell unlocks swings, goblet squats, presses, and carries: full-body strength and conditioning in one compact piece of iron.

## 4. Yoga Mat ($15-20)

The foundation for floor work, stretching, and mobility sessions. Look for at least 6mm of cushioning if you train on hard floors.

## 5. Doorway Pull-Up Bar ($20-25)

Pulling movements are the hardest to train at home without equipment. A doorway bar solves that and doubles as an anchor point for resistance bands.

## Building Your Setup Over Time

Start with the pieces that match your current training style, master them, and expand gradually. Consistency with simple tools beats an expensive setup that gathers dust.`,
			Thumbnail: "https://picsum.photos/2005",
			Category:  "Equipment",
			Tags:      []string{"Home Gym", "Budget", "Equipment", "Fitness Tips", "Strength Training"},
			Author: models.Author{
				ID:     "4",
				Name:   "Tom Wilson",
				Bio:    "Fitness Equipment Specialist and Home Gym Designer with expertise in creating effective workout spaces on any budget.",
				Avatar: "https://picsum.photos/1001",
				SocialLinks: &models.SocialLinks{
					YouTube:   "https://youtube.com/fitflow",
					Instagram: "https://instagram.com/fitflow_tom",
					Twitter:   "https://twitter.com/fitflow_tom",
				},
			},
			PublishedAt: time.Date(2024, 1, 8, 12, 0, 0, 0, time.UTC),
			UpdatedAt:   time.Date(2024, 1, 8, 12, 0, 0, 0, time.UTC),
			ReadTime:    9,
			YouTubeURL:  "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			Likes:       156,
			Comments: []models.Comment{
				{
					ID:        "6",
					Author:    "Chris Brown",
					Content:   "Great recommendations! I started with resistance bands and they're incredibly versatile.",
					CreatedAt: time.Date(2024, 1, 9, 15, 30, 0, 0, time.UTC),
					Likes:     9,
				},
			},
			IsFeatured: false,
		},
	}
}
