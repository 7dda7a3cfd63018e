package catalog

import "sync"

const python = "python"

// builtinTips is the "Tips for Today" list.
var builtinTips = []TipRecord{
	{
		Title:  "F-strings: stop concatenating like it is 2009",
		Advice: "If your string formatting looks like a ransom note, use f-strings.",
		Snippet: `name = "Billu"
bugs = 3
msg = f"Hello, {name}. You have {bugs} bugs. Good luck."
print(msg)`,
		Language: python,
	},
	{
		Title:  "Enumerate: give your loops a name tag",
		Advice: "Counting manually is how off-by-one errors reproduce.",
		Snippet: `items = ["alpha", "beta", "gamma"]
for i, item in enumerate(items, start=1):
    print(i, item)`,
		Language: python,
	},
	{
		Title:  "Zip: pair things without awkward indexing",
		Advice: "If you are looping over range(len(...)), a zip is quietly judging you.",
		Snippet: `names = ["Ada", "Linus", "Grace"]
scores = [99, 87, 95]
for name, score in zip(names, scores):
    print(name, score)`,
		Language: python,
	},
	{
		Title:  "Unpacking: let Python carry the groceries",
		Advice: "Stop walking back to the car for each variable.",
		Snippet: `point = (10, 20)
x, y = point
print(x, y)`,
		Language: python,
	},
	{
		Title:  "Slicing: take a bite, not the whole sandwich",
		Advice: "You do not need a loop to grab the last 3 items. You need boundaries.",
		Snippet: `nums = [1, 2, 3, 4, 5, 6]
last_three = nums[-3:]
every_other = nums[::2]
print(last_three, every_other)`,
		Language: python,
	},
	{
		Title:  "Dict.get: avoid KeyError drama",
		Advice: "Arguing with missing keys is a hobby. Use .get().",
		Snippet: `config = {"timeout": 30}
timeout = config.get("timeout", 10)
retries = config.get("retries", 3)
print(timeout, retries)`,
		Language: python,
	},
	{
		Title:  "Defaultdict: stop writing if-key-not-exists rituals",
		Advice: "If you are summoning keys into existence, use defaultdict like an adult wizard.",
		Snippet: `from collections import defaultdict

counts = defaultdict(int)
words = ["spam", "ham", "spam"]
for w in words:
    counts[w] += 1
print(dict(counts))`,
		Language: python,
	},
	{
		Title:  "Counter: counting is not a personality trait",
		Advice: "If you wrote a counting loop, Counter already did it and did not brag.",
		Snippet: `from collections import Counter

words = ["spam", "ham", "spam"]
c = Counter(words)
print(c["spam"])
print(c.most_common(1))`,
		Language: python,
	},
	{
		Title:  "List comprehensions: one-liners with benefits",
		Advice: "If your loop is just appending, compress the sadness into a comprehension.",
		Snippet: `nums = [1, 2, 3, 4, 5]
squares = [n * n for n in nums if n % 2 == 1]
print(squares)`,
		Language: python,
	},
	{
		Title:  "Generator expressions: same idea, less RAM",
		Advice: "Your laptop fan is not a feature. Stream values with generators.",
		Snippet: `nums = range(1_000_000)
total = sum(n * n for n in nums if n % 2 == 0)
print(total)`,
		Language: python,
	},
	{
		Title:  "Any/All: stop writing boolean novels",
		Advice: "If your condition reads like a contract, use any()/all().",
		Snippet: `values = [0, "", None, 5]
print(any(values))
print(all(values))`,
		Language: python,
	},
	{
		Title:  "Sorted with key: let the key do the thinking",
		Advice: "Do not sort by vibes. Sort by key functions.",
		Snippet: `items = ["aaa", "b", "cc"]
by_length = sorted(items, key=len)
print(by_length)`,
		Language: python,
	},
	{
		Title:  "Dataclasses: less boilerplate, more sanity",
		Advice: "If your class is 90% __init__, you are building furniture without screws.",
		Snippet: `from dataclasses import dataclass

@dataclass
class User:
    name: str
    active: bool = True

u = User("Billu")
print(u)`,
		Language: python,
	},
	{
		Title:  "Context managers: open files like you mean it",
		Advice: "If you forget to close files, your OS will remember. Forever.",
		Snippet: `path = "example.txt"
with open(path, "w", encoding="utf-8") as f:
    f.write("Hello from a responsible adult.")`,
		Language: python,
	},
	{
		Title:  "Pathlib: stop handcrafting file paths",
		Advice: "Building paths with string + '/' is how bugs migrate cross-platform.",
		Snippet: `from pathlib import Path

p = Path("data") / "input.csv"
print(p)
print(p.suffix)`,
		Language: python,
	},
	{
		Title:  "Logging: print() is not observability",
		Advice: "Print statements are like sticky notes in a hurricane. Use logging.",
		Snippet: `import logging

logging.basicConfig(level=logging.INFO)
logging.info("Starting job")
logging.warning("This might be spicy")`,
		Language: python,
	},
	{
		Title:  "Try/Except: catch exceptions, not feelings",
		Advice: "Assuming inputs behave is optimism. Handle failure like a professional pessimist.",
		Snippet: `def safe_int(x: str) -> int | None:
    try:
        return int(x)
    except ValueError:
        return None

print(safe_int("42"))
print(safe_int("nope"))`,
		Language: python,
	},
	{
		Title:  "Type hints: future you deserves subtitles",
		Advice: "If your function signature is a mystery, you are writing thriller code.",
		Snippet: `def greet(name: str, times: int = 1) -> str:
    return " ".join([f"Hi, {name}!" for _ in range(times)])

print(greet("Billu", 2))`,
		Language: python,
	},
	{
		Title:  "Walrus operator: assign and judge at the same time",
		Advice: "Sometimes you want a value and a decision. Python said: fine.",
		Snippet: `data = "hello"
if (n := len(data)) > 3:
    print(f"Length is {n}")`,
		Language: python,
	},
	{
		Title:  "Join: concatenation in loops is a slow hobby",
		Advice: "If you build strings with += in a loop, your CPU starts writing resignation drafts.",
		Snippet: `parts = ["ship", "it", "now"]
sentence = " ".join(parts)
print(sentence)`,
		Language: python,
	},
	{
		Title:  "Set operations: dedupe like you mean it",
		Advice: "Duplicates are like gremlins. Sets are the bright light.",
		Snippet: `a = {1, 2, 3}
b = {3, 4, 5}
print(a | b)
print(a & b)
print(a - b)`,
		Language: python,
	},
	{
		Title:  "Ternary expression: small decisions, fewer lines",
		Advice: "One-line ifs are fine. Two-page ifs are not.",
		Snippet: `temp = 21
label = "warm" if temp >= 20 else "cold"
print(label)`,
		Language: python,
	},
	{
		Title:  "Named tuples: readable lightweight records",
		Advice: "If you keep forgetting what index 1 means, name it.",
		Snippet: `from collections import namedtuple

Point = namedtuple("Point", ["x", "y"])
p = Point(3, 4)
print(p.x, p.y)`,
		Language: python,
	},
	{
		Title:  "Map/Filter: use responsibly (or not at all)",
		Advice: "map/filter are fine, but comprehensions are usually clearer. Choose clarity over cleverness.",
		Snippet: `nums = [1, 2, 3, 4]
evens = list(filter(lambda n: n % 2 == 0, nums))
doubled = list(map(lambda n: n * 2, evens))
print(doubled)`,
		Language: python,
	},
	{
		Title:  "timeit: measure, do not guess",
		Advice: "Performance opinions without measurements are just astrology for engineers.",
		Snippet: `import timeit

t = timeit.timeit(stmt="sum(range(1000))", number=10_000)
print(t)`,
		Language: python,
	},
}

var builtin = sync.OnceValue(func() *Catalog {
	c, err := New(builtinTips)
	if err != nil {
		panic(err)
	}
	return c
})

// Builtin returns the shared built-in catalog.
func Builtin() *Catalog {
	return builtin()
}

// BuiltinRecords returns a copy of the built-in tips.
func BuiltinRecords() []TipRecord {
	out := make([]TipRecord, len(builtinTips))
	copy(out, builtinTips)
	return out
}
